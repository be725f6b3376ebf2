package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps flag with separate value",
			args:    []string{"-d", "st.db", "-x", "no"},
			allowed: []string{"-d"},
			want:    []string{"-d", "st.db"},
		},
		{
			name:    "keeps equals form",
			args:    []string{"-d=st.db", "-x=no"},
			allowed: []string{"-d"},
			want:    []string{"-d=st.db"},
		},
		{
			name:    "drops value of disallowed flag",
			args:    []string{"-x", "no", "-l", "2000"},
			allowed: []string{"-l"},
			want:    []string{"-l", "2000"},
		},
		{
			name:    "boolean style flag without value",
			args:    []string{"-d", "-l", "2000"},
			allowed: []string{"-d", "-l"},
			want:    []string{"-d", "-l", "2000"},
		},
		{
			name:    "empty input",
			args:    nil,
			allowed: []string{"-d"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
