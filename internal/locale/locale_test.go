package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ctchen222/tictactoe/internal/game"
	"ctchen222/tictactoe/internal/player"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		pref string
		want *Catalog
	}{
		{pref: "th_TH.UTF-8", want: &Thai},
		{pref: "th", want: &Thai},
		{pref: "en_US.UTF-8", want: &English},
		{pref: "de-DE", want: &English},
		{pref: "", want: &English},
		{pref: "C", want: &English},
	}

	for _, tt := range tests {
		t.Run(tt.pref, func(t *testing.T) {
			assert.Same(t, tt.want, Select(tt.pref))
		})
	}
}

func TestCatalog_StatusText(t *testing.T) {
	botSeats := player.SeatsFor(player.ModeBot)
	humanSeats := player.SeatsFor(player.ModeHuman)

	assert.Equal(t, "X ถึงตาเล่น", Thai.StatusText(game.Status{State: game.InProgress}, botSeats, game.PlayerX))
	assert.Equal(t, "🎉 ผู้เล่น X ชนะ!", Thai.StatusText(game.Status{State: game.Won, Winner: game.PlayerX}, botSeats, game.PlayerX))
	assert.Equal(t, "🤖 บอทชนะ!", Thai.StatusText(game.Status{State: game.Won, Winner: game.PlayerO}, botSeats, game.PlayerO))
	assert.Equal(t, "🎉 Player O wins!", English.StatusText(game.Status{State: game.Won, Winner: game.PlayerO}, humanSeats, game.PlayerO))
	assert.Equal(t, "😺 It's a draw!", English.StatusText(game.Status{State: game.Draw}, humanSeats, game.PlayerX))
}
