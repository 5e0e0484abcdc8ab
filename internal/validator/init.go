package validator

import (
	"github.com/go-playground/validator/v10"

	"ctchen222/tictactoe/internal/bot"
	"ctchen222/tictactoe/internal/player"
)

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Engine enums are checked with the engine's own parsers.
	mustRegister("difficulty", func(fl validator.FieldLevel) bool {
		_, err := bot.ParseDifficulty(fl.Field().String())
		return err == nil
	})
	mustRegister("playmode", func(fl validator.FieldLevel) bool {
		_, err := player.ParseMode(fl.Field().String())
		return err == nil
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func GetValidator() *validator.Validate {
	return validate
}
