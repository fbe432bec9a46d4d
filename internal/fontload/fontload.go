// Package fontload is the filesystem entry point that feeds a byte buffer
// to the core decoder; the core itself never touches the filesystem or
// network.
package fontload

import (
	"os"

	"github.com/npillmayer/glyphatlas"
)

// LoadOpenTypeFont reads fontfile and decodes it into a Font.
func LoadOpenTypeFont(fontfile string) (*glyphatlas.Font, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	return glyphatlas.Decode(bytez)
}
