// Package exchange implements the JSON import/export boundary for resume documents.
package exchange

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
	schemadocs "github.com/jonathan/resume-builder/schemas"
)

// Shape identifies which document form an import contained.
type Shape string

const (
	// ShapeDual is a resume plus cover letter package.
	ShapeDual Shape = "package"
	// ShapeSingle is a bare resume.
	ShapeSingle Shape = "resume"
)

// Result is the outcome of Parse: either a decoded document or a validation error.
type Result struct {
	Shape  Shape
	Data   types.AppData
	Resume types.ResumeData
	Err    *ValidationError
}

// Valid reports whether the import was accepted.
func (r Result) Valid() bool {
	return r.Err == nil
}

// Package returns the imported document as a package. A single resume is
// paired with the given cover letter.
func (r Result) Package(coverLetter types.CoverLetterData) types.AppData {
	if r.Shape == ShapeSingle {
		return types.AppData{Resume: r.Resume.Clone(), CoverLetter: coverLetter.Clone()}
	}
	return r.Data.Clone()
}

var whitespace = regexp.MustCompile(`\s+`)

// Shape checks run before decoding so a wrong file is reported, not half-read.
var (
	packageSchema = schemas.MustCompile("package", schemadocs.AppData)
	resumeSchema  = schemas.MustCompile("resume", schemadocs.Resume)
)

// Slug turns a name into a filename fragment: whitespace runs become "-" and
// the result is lower-cased.
func Slug(name string) string {
	return strings.ToLower(whitespace.ReplaceAllString(name, "-"))
}

// PackageFilename is the download name for a package export.
func PackageFilename(fullName string) string {
	return fmt.Sprintf("resume-package-%s.json", Slug(fullName))
}

// ResumeFilename is the download name for a single resume export.
func ResumeFilename(fullName string) string {
	return fmt.Sprintf("resume-%s.json", Slug(fullName))
}

// Export serializes the package as two-space indented JSON and returns it with
// its suggested filename.
func Export(data types.AppData) ([]byte, string, error) {
	out, err := marshal(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal package: %w", err)
	}
	return out, PackageFilename(data.Resume.PersonalInfo.FullName), nil
}

// ExportResume serializes only the resume.
func ExportResume(resume types.ResumeData) ([]byte, string, error) {
	out, err := marshal(resume)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal resume: %w", err)
	}
	return out, ResumeFilename(resume.PersonalInfo.FullName), nil
}

func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Parse decodes raw import bytes. A top level with "resume" or "coverLetter"
// is treated as a package, one with "personalInfo" or "experience" as a single
// resume; anything else is checked against the package shape.
func Parse(raw []byte) Result {
	var root any
	if err := json.Unmarshal(raw, &root); err != nil {
		return reject(KindMalformedJSON, "input is not valid JSON", nil, err)
	}

	shape := detectShape(root)
	schema := packageSchema
	if shape == ShapeSingle {
		schema = resumeSchema
	}

	if err := schema.Validate(raw); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			return reject(KindMissingKeys, fmt.Sprintf("not a %s document", shape), ve.Messages(), nil)
		}
		return reject(KindMissingKeys, "shape check failed", nil, err)
	}

	res := Result{Shape: shape}
	var err error
	if shape == ShapeSingle {
		err = json.Unmarshal(raw, &res.Resume)
	} else {
		err = json.Unmarshal(raw, &res.Data)
	}
	if err != nil {
		return reject(KindDecode, "document does not match the resume model", nil, err)
	}
	return res
}

func detectShape(root any) Shape {
	obj, ok := root.(map[string]any)
	if !ok {
		return ShapeDual
	}
	if _, ok := obj["resume"]; ok {
		return ShapeDual
	}
	if _, ok := obj["coverLetter"]; ok {
		return ShapeDual
	}
	_, hasInfo := obj["personalInfo"]
	_, hasExp := obj["experience"]
	if hasInfo || hasExp {
		return ShapeSingle
	}
	return ShapeDual
}

func reject(kind Kind, msg string, fields []string, cause error) Result {
	return Result{Err: &ValidationError{Kind: kind, Message: msg, Fields: fields, Cause: cause}}
}
