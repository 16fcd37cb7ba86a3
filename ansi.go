package entropy

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
)

const (
	esc       = "\x1b"
	upperHalf = '▀'
)

// halfBlock is one terminal cell: the upper pixel is drawn as the
// foreground of ▀ and the lower pixel as the background.
type halfBlock struct {
	fg, bg color.NRGBA
}

// WriteANSI writes img as 24-bit ANSI art, two pixel rows per line. Runs of
// identical cells share one escape sequence and every line ends with a
// reset. An odd last row is padded with black.
func WriteANSI(w io.Writer, img *image.NRGBA) error {
	bw := bufio.NewWriter(w)
	for _, row := range halfBlocks(img) {
		bw.WriteString(compressRow(row))
	}
	return bw.Flush()
}

// halfBlocks pairs the rows of img into terminal cells.
func halfBlocks(img *image.NRGBA) [][]halfBlock {
	b := img.Bounds()
	rows := make([][]halfBlock, 0, (b.Dy()+1)/2)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		row := make([]halfBlock, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			cell := halfBlock{fg: opaque(img.NRGBAAt(x, y)), bg: letterbox}
			if y+1 < b.Max.Y {
				cell.bg = opaque(img.NRGBAAt(x, y+1))
			}
			row[x-b.Min.X] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

// opaque composites c over black. Terminals have no alpha.
func opaque(c color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	return color.NRGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: 255,
	}
}

// compressRow emits one escape per run of equal cells. Cells whose halves
// match are written as a space on the background color.
func compressRow(row []halfBlock) string {
	var sb strings.Builder
	for i := 0; i < len(row); {
		j := i + 1
		for j < len(row) && row[j] == row[i] {
			j++
		}
		sb.WriteString(formatANSICode(row[i], j-i))
		i = j
	}
	sb.WriteString(esc + "[0m\n")
	return sb.String()
}

func formatANSICode(cell halfBlock, count int) string {
	if cell.fg == cell.bg {
		return fmt.Sprintf("%s[48;2;%d;%d;%dm%s", esc,
			cell.bg.R, cell.bg.G, cell.bg.B, strings.Repeat(" ", count))
	}
	return fmt.Sprintf("%s[38;2;%d;%d;%d;48;2;%d;%d;%dm%s", esc,
		cell.fg.R, cell.fg.G, cell.fg.B,
		cell.bg.R, cell.bg.G, cell.bg.B,
		strings.Repeat(string(upperHalf), count))
}
