// Package exi15118 is the public entry point of this module: it ties the
// fixed EXI header prelude together with the document-level dispatch in
// package document, and hands callers a caller-owned-buffer API (spec.md
// §1: "callers own the backing buffer; this module neither allocates a
// growable buffer nor performs I/O").
package exi15118

import (
	"github.com/EVerest/everest-core-sub002/bitio"
	"github.com/EVerest/everest-core-sub002/document"
)

// EncodeDocument serializes doc into buf, returning the number of bytes
// written.
func EncodeDocument(buf []byte, doc *document.Document) (int, error) {
	c := bitio.NewWriter(buf)
	if err := doc.Encode(c); err != nil {
		return 0, err
	}
	if err := c.Align(); err != nil {
		return 0, err
	}
	return c.BytePosition(), nil
}

// DecodeDocument parses a full EXI document (header prelude plus body)
// from buf.
func DecodeDocument(buf []byte) (*document.Document, error) {
	c := bitio.NewReader(buf)
	return document.Decode(c)
}

// EncodeFragment serializes a standalone schema fragment into buf, without
// the document header prelude.
func EncodeFragment(buf []byte, frag *document.Fragment) (int, error) {
	c := bitio.NewWriter(buf)
	if err := frag.Encode(c); err != nil {
		return 0, err
	}
	if err := c.Align(); err != nil {
		return 0, err
	}
	return c.BytePosition(), nil
}

// DecodeFragment parses a standalone schema fragment from buf.
func DecodeFragment(buf []byte) (*document.Fragment, error) {
	c := bitio.NewReader(buf)
	return document.DecodeFragment(c)
}

// EncodeXmldsigFragment serializes a standalone xmldsig fragment into buf.
func EncodeXmldsigFragment(buf []byte, frag *document.XmldsigFragment) (int, error) {
	c := bitio.NewWriter(buf)
	if err := frag.Encode(c); err != nil {
		return 0, err
	}
	if err := c.Align(); err != nil {
		return 0, err
	}
	return c.BytePosition(), nil
}

// DecodeXmldsigFragment parses a standalone xmldsig fragment from buf.
func DecodeXmldsigFragment(buf []byte) (*document.XmldsigFragment, error) {
	c := bitio.NewReader(buf)
	return document.DecodeXmldsigFragment(c)
}
