package sparkline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrailleEncoder_EncodeCell(t *testing.T) {
	enc := brailleEncoder{}
	assert.Equal(t, 4, enc.PerRow())
	assert.Equal(t, 2, enc.SamplesPerCell())

	tests := []struct {
		name   string
		levels []int
		flip   bool
		want   rune
	}{
		{"empty cell is a space", []int{0, 0}, false, ' '},
		{"right column one dot", []int{0, 1}, false, '⢀'},
		{"left column one dot", []int{1, 0}, false, '⡀'},
		{"both columns full", []int{4, 4}, false, '⣿'},
		{"staircase", []int{2, 3}, false, '⣴'},
		{"flipped right column one dot", []int{0, 1}, true, '⠈'},
		{"flipped staircase", []int{3, 4}, true, '⢿'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(enc.EncodeCell(tt.levels, tt.flip)))
		})
	}
}

func TestBlockEncoder_EncodeCell(t *testing.T) {
	enc := blockEncoder{}
	assert.Equal(t, 8, enc.PerRow())
	assert.Equal(t, 1, enc.SamplesPerCell())

	var up, down []rune
	for level := 0; level <= 8; level++ {
		up = append(up, enc.EncodeCell([]int{level}, false))
		down = append(down, enc.EncodeCell([]int{level}, true))
	}
	assert.Equal(t, " ▁▂▃▄▅▆▇█", string(up))
	assert.Equal(t, ' ', down[0])
	assert.Equal(t, '▀', down[4])
	assert.Equal(t, '█', down[8])
	assert.Equal(t, ' ', enc.EncodeCell(nil, false))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"braille", ModeBraille, false},
		{"", ModeBraille, false},
		{"BLOCK", ModeBlock, false},
		{" blocks ", ModeBlock, false},
		{"ascii", ModeBraille, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMode_StringAndNext(t *testing.T) {
	assert.Equal(t, "braille", ModeBraille.String())
	assert.Equal(t, "block", ModeBlock.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
	assert.Equal(t, ModeBlock, ModeBraille.Next())
	assert.Equal(t, ModeBraille, ModeBlock.Next())
	assert.Equal(t, 2, ModeBraille.SamplesPerCell())
	assert.Equal(t, 1, ModeBlock.SamplesPerCell())
}
