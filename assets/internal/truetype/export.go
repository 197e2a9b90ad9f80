/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"io"

	"github.com/creatorplaybook/assettool/common"
)

// Font wraps font for outside access.
type Font struct {
	br *byteReader
	*font
}

// Parse parses the truetype font from `rs` and returns a new Font. `rs` must stay readable for as
// long as the Font is used.
func Parse(rs io.ReadSeeker) (*Font, error) {
	r := newByteReader(rs)

	fnt, err := parseFont(r)
	if err != nil {
		return nil, err
	}

	return &Font{
		br:   r,
		font: fnt,
	}, nil
}

// ParseBytes parses the truetype font contained in `data`.
func ParseBytes(data []byte) (*Font, error) {
	return Parse(bytes.NewReader(data))
}

// Validate checks the table checksums and the whole-font checksum adjustment of `f`.
func (f *Font) Validate() error {
	return f.validate(f.br)
}

// Flavor returns the sfnt version of the font, e.g. FlavorTrueType.
func (f *Font) Flavor() uint32 {
	return f.ot.sfntVersion
}

// Info returns the descriptive information of the font.
func (f *Font) Info() Info {
	return f.info()
}

// Tables returns the raw data of all tables, in table directory order. A record reaching past the
// end of the font data is a range check error.
func (f *Font) Tables() ([]Table, error) {
	size, err := f.br.Size()
	if err != nil {
		return nil, err
	}
	tables := make([]Table, 0, len(f.trec.list))
	for _, tr := range f.trec.list {
		if end := int64(tr.offset) + int64(tr.length); end > size {
			common.Log.Debug("Table %s outside font data (%d > %d)", tr.tableTag, end, size)
			return nil, errRangeCheck
		}
		err := f.br.Seek(int64(tr.offset))
		if err != nil {
			return nil, err
		}
		t := Table{Tag: string(tr.tableTag[:])}
		err = f.br.readBytes(&t.Data, int(tr.length))
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}
