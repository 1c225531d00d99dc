package xmldsig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EVerest/everest-core-sub002/bitio"
)

func TestCanonicalizationMethodRoundTrip(t *testing.T) {
	in := &CanonicalizationMethodType{Algorithm: "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"}
	buf := make([]byte, 128)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeCanonicalizationMethodType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTransformRoundTripWithAnyValue(t *testing.T) {
	in := &TransformType{
		Algorithm:      "http://www.w3.org/2000/09/xmldsig#enveloped-signature",
		AnyValue:       []byte{0x01, 0x02, 0x03},
		AnyValueIsUsed: true,
	}
	buf := make([]byte, 256)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeTransformType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTransformsTypeAtMaxCapacityOmitsTrailingBit(t *testing.T) {
	in := &TransformsType{}
	for i := 0; i < MaxTransforms; i++ {
		in.Transform[i] = TransformType{Algorithm: "urn:example:transform"}
	}
	in.TransformLen = MaxTransforms

	buf := make([]byte, 512)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeTransformsType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReferenceTypeWithAllOptionalAttributes(t *testing.T) {
	in := &ReferenceType{
		Id: "ref-1", IdIsUsed: true,
		URI: "#object-1", URIIsUsed: true,
		Type: "http://www.w3.org/2000/09/xmldsig#Object", TypeIsUsed: true,
		DigestMethod: DigestMethodType{Algorithm: "http://www.w3.org/2001/04/xmlenc#sha256"},
		DigestValue:  []byte{0xde, 0xad, 0xbe, 0xef},
	}
	buf := make([]byte, 512)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeReferenceType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestManifestTypeRoundTrip(t *testing.T) {
	in := &ManifestType{Id: "manifest-1", IdIsUsed: true}
	in.Reference[0] = ReferenceType{
		DigestMethod: DigestMethodType{Algorithm: "http://www.w3.org/2001/04/xmlenc#sha256"},
		DigestValue:  []byte{1, 2, 3, 4},
	}
	in.ReferenceLen = 1

	buf := make([]byte, 512)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeManifestType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestX509DataTypeRoundTrip(t *testing.T) {
	in := &X509DataType{
		X509SubjectName:       "CN=Example",
		X509SubjectNameIsUsed: true,
	}
	in.X509Certificate[0] = []byte{0x30, 0x82, 0x01, 0x00}
	in.X509CertificateLen = 1

	buf := make([]byte, 2048)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeX509DataType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// TestPGPDataTypeChoice1WithKeyPacket exercises the documented generator
// artifact's live branch: choice_1 selected, with PGPKeyPacket present.
func TestPGPDataTypeChoice1WithKeyPacket(t *testing.T) {
	in := &PGPDataType{
		Choice1IsUsed:      true,
		PGPKeyID:           []byte{0x01, 0x02},
		PGPKeyPacket:       []byte{0x03, 0x04, 0x05},
		PGPKeyPacketIsUsed: true,
	}
	buf := make([]byte, 4096)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodePGPDataType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestPGPDataTypeChoice2(t *testing.T) {
	in := &PGPDataType{
		Choice2IsUsed: true,
		PGPKeyPacket:  []byte{0x0a, 0x0b},
	}
	buf := make([]byte, 4096)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodePGPDataType(r)
	require.NoError(t, err)
	assert.True(t, out.Choice2IsUsed)
	assert.Equal(t, in.PGPKeyPacket, out.PGPKeyPacket)
}

func TestKeyInfoTypeX509Branch(t *testing.T) {
	in := &KeyInfoType{
		Id: "ki-1", IdIsUsed: true,
		X509DataIsUsed: true,
		X509Data: X509DataType{
			X509SubjectName:       "CN=Test",
			X509SubjectNameIsUsed: true,
		},
	}
	buf := make([]byte, 2048)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeKeyInfoType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestKeyInfoTypeNoChoiceSetErrors(t *testing.T) {
	in := &KeyInfoType{}
	w := bitio.NewWriter(make([]byte, 64))
	err := in.Encode(w)
	require.Error(t, err)
}

// TestSignatureTypeFullRoundTrip mirrors spec.md §8 scenario 5: a complete
// SignedInfo/SignatureValue/KeyInfo/Object chain.
func TestSignatureTypeFullRoundTrip(t *testing.T) {
	in := &SignatureType{
		Id: "sig-1", IdIsUsed: true,
		SignedInfo: SignedInfoType{
			CanonicalizationMethod: CanonicalizationMethodType{Algorithm: "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"},
			SignatureMethod:        SignatureMethodType{Algorithm: "http://www.w3.org/2001/04/xmldsig-more#ecdsa-sha256"},
		},
		SignatureValue: SignatureValueType{CONTENT: []byte{0xaa, 0xbb, 0xcc}},
		KeyInfo: KeyInfoType{
			X509DataIsUsed: true,
			X509Data:       X509DataType{X509SubjectName: "CN=EVCC", X509SubjectNameIsUsed: true},
		},
		KeyInfoIsUsed: true,
	}
	in.SignedInfo.Reference[0] = ReferenceType{
		URI: "#object-1", URIIsUsed: true,
		DigestMethod: DigestMethodType{Algorithm: "http://www.w3.org/2001/04/xmlenc#sha256"},
		DigestValue:  []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}
	in.SignedInfo.ReferenceLen = 1
	in.Object[0] = ObjectType{Any: []byte{0xff}, AnyIsUsed: true}
	in.ObjectLen = 1

	buf := make([]byte, 4096)
	w := bitio.NewWriter(buf)
	require.NoError(t, in.Encode(w))

	r := bitio.NewReader(buf)
	out, err := DecodeSignatureType(r)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSignaturePropertiesRequiresAtLeastOne(t *testing.T) {
	in := &SignaturePropertiesType{}
	w := bitio.NewWriter(make([]byte, 64))
	err := in.Encode(w)
	require.Error(t, err)
}
