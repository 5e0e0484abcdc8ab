package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type settings struct {
	Difficulty string `validate:"difficulty"`
	Mode       string `validate:"playmode"`
}

func TestGetValidator(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.Struct(settings{Difficulty: "hard", Mode: "pvp"}))
	assert.Error(t, v.Struct(settings{Difficulty: "impossible", Mode: "bot"}))
	assert.Error(t, v.Struct(settings{Difficulty: "easy", Mode: "online"}))
}
