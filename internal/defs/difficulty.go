// internal/defs/difficulty.go
package defs

import (
	"fmt"
	"strings"
)

// Difficulty describes one of the session difficulty levels.
type Difficulty struct {
	Name          string
	StartingBeans int
	Multiplier    float64 // здоровье и скорость врагов
	WinRound      int     // 0 — победы нет (endless)
}

var (
	Easy    = Difficulty{Name: "EASY", StartingBeans: 100, Multiplier: 1.0, WinRound: 15}
	Medium  = Difficulty{Name: "MEDIUM", StartingBeans: 69, Multiplier: 1.4, WinRound: 15}
	Hard    = Difficulty{Name: "HARD", StartingBeans: 40, Multiplier: 1.8, WinRound: 15}
	Endless = Difficulty{Name: "ENDLESS", StartingBeans: 69, Multiplier: 1.4, WinRound: 0}
)

// Difficulties in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard, Endless}

// ParseDifficulty looks a difficulty up by name.
func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}
