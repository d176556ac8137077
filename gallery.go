package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// CertificateRef is the asset path of one certificate image.
type CertificateRef string

const CertificateCount = 9

// ErrUnknownCertificate is returned when a selection names an image outside
// the generated certificate list.
var ErrUnknownCertificate = errors.New("unknown certificate")

var certificates = generateCertificates()

// generateCertificates builds the fixed asset paths. Cert9 is the only png and
// the files under certificates/ are named to match.
func generateCertificates() []CertificateRef {
	refs := make([]CertificateRef, 0, CertificateCount)
	for i := 1; i <= CertificateCount; i++ {
		ext := "jpg"
		if i == 9 {
			ext = "png"
		}
		refs = append(refs, CertificateRef(fmt.Sprintf("/certificates/Cert%d.%s", i, ext)))
	}
	return refs
}

// Certificates returns the ordered certificate paths.
func Certificates() []CertificateRef {
	out := make([]CertificateRef, len(certificates))
	copy(out, certificates)
	return out
}

// CertificateAt returns the certificate for a 1-based thumbnail index.
func CertificateAt(index int) (CertificateRef, error) {
	if index < 1 || index > len(certificates) {
		return "", errors.Wrapf(ErrUnknownCertificate, "index %d", index)
	}
	return certificates[index-1], nil
}

func knownCertificate(ref CertificateRef) bool {
	for _, c := range certificates {
		if c == ref {
			return true
		}
	}
	return false
}

// Gallery tracks which certificate, if any, is shown enlarged. The zero value
// is closed.
type Gallery struct {
	selected CertificateRef
}

// Select opens the overlay on ref, replacing any current selection.
func (g *Gallery) Select(ref CertificateRef) error {
	if !knownCertificate(ref) {
		return errors.Wrapf(ErrUnknownCertificate, "%q", string(ref))
	}
	g.selected = ref
	return nil
}

// SelectIndex opens the overlay on the 1-based thumbnail index.
func (g *Gallery) SelectIndex(index int) (CertificateRef, error) {
	ref, err := CertificateAt(index)
	if err != nil {
		return "", err
	}
	g.selected = ref
	return ref, nil
}

// Dismiss closes the overlay.
func (g *Gallery) Dismiss() {
	g.selected = ""
}

func (g Gallery) Selected() (CertificateRef, bool) {
	return g.selected, g.selected != ""
}

func (g Gallery) Open() bool {
	return g.selected != ""
}
