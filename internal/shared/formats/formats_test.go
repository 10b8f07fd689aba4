package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"yaml", YAML, true},
		{".yml", YAML, true},
		{"YAML", YAML, true},
		{".toml", TOML, true},
		{"json", JSON, true},
		{".ini", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromPath(t *testing.T) {
	f, err := FromPath("/etc/webdriverx/drivers.toml")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)

	_, err = FromPath("Makefile")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestUnmarshal(t *testing.T) {
	type doc struct {
		Name string `yaml:"name" toml:"name" json:"name"`
	}

	inputs := map[Format]string{
		YAML: "name: firefox\n",
		TOML: "name = \"firefox\"\n",
		JSON: `{"name":"firefox"}`,
	}
	for format, input := range inputs {
		var d doc
		require.NoError(t, Unmarshal(format, []byte(input), &d), format)
		assert.Equal(t, "firefox", d.Name, format)
	}

	var d doc
	assert.ErrorIs(t, Unmarshal(Format("xml"), []byte("<a/>"), &d), ErrUnsupportedFormat)
	assert.Error(t, Unmarshal(JSON, []byte("{"), &d))
}
