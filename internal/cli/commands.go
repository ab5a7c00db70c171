package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/inkwellhq/canopy/internal/adapters/file"
	"github.com/inkwellhq/canopy/internal/presentation"
	"github.com/inkwellhq/canopy/pkg/snapshot"
)

// ErrInvalidDocument is returned by RunValidate when violations are found,
// after the report has been written.
var ErrInvalidDocument = errors.New("document has structural violations")

// RunValidate checks a snapshot file and writes a human report.
func RunValidate(path string, out io.Writer) error {
	_, err := readSnapshot(path)

	var valErr *snapshot.ValidationError
	if errors.As(err, &valErr) {
		fmt.Fprint(out, presentation.ValidationReport(valErr.Violations))
		return ErrInvalidDocument
	}
	if err != nil {
		return err
	}
	fmt.Fprint(out, presentation.ValidationReport(nil))
	return nil
}

// RunInspect prints an indented outline of a snapshot's tree.
func RunInspect(path string, out io.Writer) error {
	doc, err := readSnapshot(path)
	if err != nil {
		return err
	}
	fmt.Fprint(out, presentation.Outline(doc.EmailTree))
	return nil
}

// RunExport re-stamps a snapshot (export time, format version) and writes
// it to dest. Source and destination codecs follow the file extensions, so
// this doubles as a JSON/YAML converter.
func RunExport(src, dest string, testData map[string]any) error {
	doc, err := readSnapshot(src)
	if err != nil {
		return err
	}
	stamped := snapshot.New(doc.EmailTree)
	stamped.TestData = doc.TestData
	if testData != nil {
		stamped.TestData = testData
	}
	return writeSnapshot(dest, stamped)
}

// RunImport validates a snapshot file and saves it into the local document
// store. The whole import is rejected when the validator reports anything.
func RunImport(ctx context.Context, path, storeDir string, out io.Writer) error {
	doc, err := readSnapshot(path)

	var valErr *snapshot.ValidationError
	if errors.As(err, &valErr) {
		fmt.Fprint(out, presentation.ValidationReport(valErr.Violations))
		return ErrInvalidDocument
	}
	if err != nil {
		return err
	}

	store := file.New(storeDir)
	id := documentID(path)
	if err := store.Save(ctx, id, doc); err != nil {
		return err
	}
	fmt.Fprintf(out, "imported %q (%d nodes)\n", id, doc.EmailTree.Count())
	return nil
}
