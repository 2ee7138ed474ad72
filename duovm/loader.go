package duovm

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadHex parses the DuoVM hex record format from r and writes every byte
// to mem at the recorded addresses (spec.md §6):
//
//	HHHH: BB BB BB ...
//
// HHHH is a hex load address, each BB a hex byte, fields whitespace
// separated. Lines not beginning with a hex digit are skipped.
func LoadHex(mem *Memory, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || !isHexDigit(line[0]) {
			continue
		}

		colon := strings.IndexByte(line, ':')
		if colon < 0 {
			continue
		}

		addr64, err := strconv.ParseUint(line[:colon], 16, 16)
		if err != nil {
			return errors.Wrapf(err, "duovm: line %d: invalid address %q", lineNo, line[:colon])
		}
		addr := uint16(addr64)

		for _, field := range strings.Fields(line[colon+1:]) {
			if !isHexByte(field) {
				break
			}
			b, err := strconv.ParseUint(field, 16, 8)
			if err != nil {
				return errors.Wrapf(err, "duovm: line %d: invalid byte %q", lineNo, field)
			}
			mem.LoadAt(addr, []byte{byte(b)})
			addr++
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "duovm: reading hex program")
	}
	return nil
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isHexByte reports whether field is non-empty and made only of hex
// digits; a field that passes but does not fit in a byte is rejected by
// the caller's parse as an invalid byte. The
// original loader stops scanning a record's byte list the moment it sees
// something that doesn't look like hex, rather than failing the whole
// file; this mirrors that forgiving behavior for trailing comments.
func isHexByte(field string) bool {
	if len(field) == 0 || !isHexDigit(field[0]) {
		return false
	}
	for i := 0; i < len(field); i++ {
		if !isHexDigit(field[i]) {
			return false
		}
	}
	return true
}
