package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground: true,
		Colors: ConfigColors{
			Cell:        236,
			Grid:        60,
			X:           109,
			O:           180,
			Highlight:   160,
			CursorBG:    24,
			CurrentMove: 245,
		},
		Symbols: ConfigSymbols{
			X:      "X",
			O:      "O",
			Cursor: "·",
		},
	}

	DefaultConfig = Config{
		LogLevel:       "info",
		MovesAscending: true,
		Theme:          DefaultTheme,
	}
}
