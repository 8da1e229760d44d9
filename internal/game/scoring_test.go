package game

import (
	"testing"

	"belote-engine/internal/shared"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name      string
		raw       [2]int
		won       [2]int
		taker     shared.TeamEnum
		want      [2]int
		wantCapot bool
		wantSet   bool
	}{
		{name: "taker makes it", raw: [2]int{92, 70}, won: [2]int{5, 3}, taker: shared.TeamA, want: [2]int{92, 70}},
		{name: "going set", raw: [2]int{70, 92}, won: [2]int{4, 4}, taker: shared.TeamA, want: [2]int{0, 162}, wantSet: true},
		{name: "going set as team B", raw: [2]int{100, 62}, won: [2]int{6, 2}, taker: shared.TeamB, want: [2]int{162, 0}, wantSet: true},
		{name: "tie is not set", raw: [2]int{81, 81}, won: [2]int{4, 4}, taker: shared.TeamB, want: [2]int{81, 81}},
		{name: "taker capot", raw: [2]int{162, 0}, won: [2]int{8, 0}, taker: shared.TeamA, want: [2]int{250, 0}, wantCapot: true},
		{name: "defender capot", raw: [2]int{162, 0}, won: [2]int{8, 0}, taker: shared.TeamB, want: [2]int{250, 0}, wantCapot: true, wantSet: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Settle(tt.raw, tt.won, tt.taker)
			if got.Points != tt.want || got.Capot != tt.wantCapot || got.Set != tt.wantSet {
				t.Fatalf("Settle = %+v, want points %v capot %t set %t", got, tt.want, tt.wantCapot, tt.wantSet)
			}
			if sum := got.Points[0] + got.Points[1]; sum != RoundTotal && sum != CapotPoints {
				t.Fatalf("points sum to %d", sum)
			}
		})
	}
}

func TestScoreRoundRejectsUnfinishedTricks(t *testing.T) {
	if _, err := ScoreRound(make([]*shared.Trick, 3), Contract{}); err == nil {
		t.Fatalf("expected error for three tricks")
	}
	tricks := make([]*shared.Trick, TricksPerRound)
	for i := range tricks {
		tricks[i] = shared.NewTrick(0)
	}
	if _, err := ScoreRound(tricks, Contract{}); err == nil {
		t.Fatalf("expected error for empty tricks")
	}
}

func TestMatchWinner(t *testing.T) {
	takerA := &Contract{Taker: 2, Trump: shared.Hearts}
	tests := []struct {
		name   string
		scores [2]int
		last   *Contract
		want   shared.TeamEnum
		ended  bool
	}{
		{name: "below target", scores: [2]int{500, 980}, last: takerA},
		{name: "A crosses", scores: [2]int{1012, 700}, last: takerA, want: shared.TeamA, ended: true},
		{name: "both cross, B higher", scores: [2]int{1001, 1090}, last: takerA, want: shared.TeamB, ended: true},
		{name: "tie goes to defenders", scores: [2]int{1040, 1040}, last: takerA, want: shared.TeamB, ended: true},
		{name: "tie without taker plays on", scores: [2]int{1040, 1040}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ended := matchWinner(tt.scores, 1000, tt.last)
			if ended != tt.ended || (ended && got != tt.want) {
				t.Fatalf("matchWinner = %s, %t; want %s, %t", got, ended, tt.want, tt.ended)
			}
		})
	}
}
