package configs

import (
	"bytes"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var charsets = map[string]encoding.Encoding{
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
	"cp932":        japanese.ShiftJIS,
	"windows-31j":  japanese.ShiftJIS,
	"euc-jp":       japanese.EUCJP,
	"iso-2022-jp":  japanese.ISO2022JP,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
}

// SupportedCharsets lists the accepted --encoding values besides utf-8.
func SupportedCharsets() []string {
	return []string{"shift_jis", "euc-jp", "iso-2022-jp", "windows-1252", "iso-8859-1"}
}

// decodeCharset converts raw from the named charset to UTF-8.
func decodeCharset(raw []byte, name string) ([]byte, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if key == "shift-jis" {
		key = "shift_jis"
	}

	switch key {
	case "", "utf-8", "utf8":
		return bytes.TrimPrefix(raw, utf8BOM), nil
	}

	enc, ok := charsets[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrUnsupportedEncoding, name)
	}

	data, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrConfigInvalid, err)
	}
	return data, nil
}
