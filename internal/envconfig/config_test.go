package envconfig

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar(t *testing.T) {
	t.Setenv("AUTOGRAD_TEST_VAR", `  "quoted"  `)
	assert.Equal(t, "quoted", Var("AUTOGRAD_TEST_VAR"))
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"yes":   true, // unparsable but set
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("AUTOGRAD_DEBUG", value)
			assert.Equal(t, want, Debug())
		})
	}
}

func TestLogLevel(t *testing.T) {
	t.Setenv("AUTOGRAD_DEBUG", "")
	assert.Equal(t, slog.LevelInfo, LogLevel())

	t.Setenv("AUTOGRAD_DEBUG", "1")
	assert.Equal(t, slog.LevelDebug, LogLevel())
}

func TestUint(t *testing.T) {
	t.Setenv("AUTOGRAD_EPOCHS", "")
	assert.Equal(t, uint(5000), Epochs())

	t.Setenv("AUTOGRAD_EPOCHS", "250")
	assert.Equal(t, uint(250), Epochs())

	t.Setenv("AUTOGRAD_EPOCHS", "-3")
	assert.Equal(t, uint(5000), Epochs())

	t.Setenv("AUTOGRAD_SEED", "42")
	assert.Equal(t, uint64(42), Seed())
}

func TestAsMap(t *testing.T) {
	t.Setenv("AUTOGRAD_SEED", "7")
	m := AsMap()
	assert.Len(t, m, 3)
	assert.Equal(t, uint64(7), m["AUTOGRAD_SEED"].Value)
	assert.Equal(t, "AUTOGRAD_DEBUG", m["AUTOGRAD_DEBUG"].Name)
}
