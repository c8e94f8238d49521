package gifcodec

import (
	"errors"
	"fmt"
)

// GIF block introducers and extension labels.
const (
	extensionIntroducer  = 0x21
	imageSeparator       = 0x2C
	trailer              = 0x3B
	graphicControlLabel  = 0xF9
	colorTableFlag       = 0x80
	colorTableSizeMask   = 0x07
	headerSize           = 6
	screenDescriptorSize = 7
	imageDescriptorSize  = 9
)

var errTruncated = errors.New("gifcodec: truncated block")

// frameControls walks the block structure of data and reports, for each
// image descriptor in stream order, whether a Graphic Control Extension
// preceded it. image/gif reads that block but does not expose whether it
// was present, and a missing one leaves the frame without delay and
// disposal metadata.
func frameControls(data []byte) ([]bool, error) {
	if len(data) < headerSize+screenDescriptorSize {
		return nil, errTruncated
	}
	if sig := string(data[:headerSize]); sig != "GIF87a" && sig != "GIF89a" {
		return nil, fmt.Errorf("gifcodec: bad signature %q", sig)
	}

	pos := headerSize + screenDescriptorSize
	pos += colorTableBytes(data[headerSize+4])

	var controls []bool
	pending := false
	for pos < len(data) {
		var err error
		switch data[pos] {
		case extensionIntroducer:
			if pos+1 >= len(data) {
				return nil, errTruncated
			}
			if data[pos+1] == graphicControlLabel {
				pending = true
			}
			pos, err = skipSubBlocks(data, pos+2)
		case imageSeparator:
			if pos+1+imageDescriptorSize > len(data) {
				return nil, errTruncated
			}
			flags := data[pos+imageDescriptorSize]
			pos += 1 + imageDescriptorSize + colorTableBytes(flags)
			// LZW minimum code size precedes the data sub-blocks.
			pos, err = skipSubBlocks(data, pos+1)
			controls = append(controls, pending)
			pending = false
		case trailer:
			return controls, nil
		default:
			return nil, fmt.Errorf("gifcodec: unknown block 0x%02x at offset %d", data[pos], pos)
		}
		if err != nil {
			return nil, err
		}
	}

	// A missing trailer is tolerated; image/gif has already validated the
	// frames themselves.
	return controls, nil
}

// colorTableBytes returns the size of the color table announced by flags.
func colorTableBytes(flags byte) int {
	if flags&colorTableFlag == 0 {
		return 0
	}
	return 3 << ((flags & colorTableSizeMask) + 1)
}

// skipSubBlocks skips a run of size-prefixed sub-blocks starting at pos and
// returns the offset just past the zero-length terminator.
func skipSubBlocks(data []byte, pos int) (int, error) {
	for {
		if pos >= len(data) {
			return pos, errTruncated
		}
		n := int(data[pos])
		pos++
		if n == 0 {
			return pos, nil
		}
		pos += n
	}
}
