package pong

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBoxesSegmentCounts(t *testing.T) {
	f := Field{Width: 700, Height: 600}
	want := [10]int{6, 2, 5, 5, 4, 5, 6, 3, 7, 6}

	for d, n := range want {
		assert.Len(t, ScoreBoxes(f, 0, d), n, "digit %d", d)
	}
}

func TestScoreBoxesSitOnBaseline(t *testing.T) {
	f := Field{Width: 700, Height: 600}

	for _, b := range ScoreBoxes(f, PlayerScoreX(f, 8), 8) {
		assert.GreaterOrEqual(t, b.Y, 120.0-digitHeight)
		assert.LessOrEqual(t, b.Bottom(), 120.0)
		assert.GreaterOrEqual(t, b.X, 235.0)
		assert.LessOrEqual(t, b.Right(), 235.0+digitWidth)
	}
}

func TestScoreBoxesMultipleDigits(t *testing.T) {
	f := Field{Width: 700, Height: 600}

	boxes := ScoreBoxes(f, 150, 10)
	require.Len(t, boxes, 8)

	// "1" is two right-hand segments; "0" starts one digit width plus a gap later
	assert.Equal(t, 150.0+digitWidth-digitStroke, boxes[0].X)
	assert.Equal(t, 150.0+digitWidth+digitGap, boxes[2].X)

	// Stays clear of the net
	for _, b := range boxes {
		assert.Less(t, b.Right(), NetDashes(f)[0].X)
	}
}

func TestScoreBoxesScaleWithField(t *testing.T) {
	boxes := ScoreBoxes(Field{Width: 350, Height: 300}, 0, 1)
	require.Len(t, boxes, 2)

	// Half-size court: every metric halves
	assert.Equal(t, digitStroke/2.0, boxes[0].W)
	assert.Equal(t, digitHeight/4.0, boxes[0].H)
	assert.Equal(t, 60.0, boxes[1].Bottom())
}
