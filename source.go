/*
 * source.go, part of ballpit.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package ballpit

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

//source is an input file opened for reading. Regular files are mapped
//in memory. Compressed files are decompressed on the fly.
//Close releases the decompressor, the mapping and the file, in that order.
type source struct {
	io.Reader
	fp     *os.File
	mm     mmap.MMap
	zclose func() error
}

//Close closes everything that was opened for the source.
func (S *source) Close() error {
	var errs []error
	if S.zclose != nil {
		errs = append(errs, S.zclose())
	}
	if S.mm != nil {
		errs = append(errs, S.mm.Unmap())
	}
	errs = append(errs, S.fp.Close())
	return errors.Join(errs...)
}

//openSource opens the file name and decides whether it needs to be
//decompressed, by looking at the first bytes, not at the name.
func openSource(name string) (*source, error) {
	fp, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	S := &source{fp: fp}
	info, err := fp.Stat()
	if err != nil {
		fp.Close()
		return nil, err
	}
	var raw io.Reader
	var head []byte
	//Empty files can't be mapped, and neither can pipes and such.
	if info.Mode().IsRegular() && info.Size() > 0 {
		S.mm, err = mmap.Map(fp, mmap.RDONLY, 0)
		if err != nil {
			fp.Close()
			return nil, err
		}
		head = S.mm
		raw = bytes.NewReader(S.mm)
	} else {
		br := bufio.NewReader(fp)
		head, _ = br.Peek(len(zstdMagic)) //a short or failed peek just means "not compressed"
		raw = br
	}
	S.Reader = raw
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		zr, err := gzip.NewReader(raw)
		if err != nil {
			S.Close()
			return nil, err
		}
		S.Reader = zr
		S.zclose = zr.Close
	case bytes.HasPrefix(head, zstdMagic):
		zr, err := zstd.NewReader(raw)
		if err != nil {
			S.Close()
			return nil, err
		}
		S.Reader = zr
		S.zclose = func() error {
			zr.Close()
			return nil
		}
	}
	return S, nil
}
