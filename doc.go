// Package markerpdf generates printable PDF sheets of ArUco fiducial markers.
//
// # Quick Start
//
// Create a generator with a marker encoder, generate a job, and close when done:
//
//	gen, err := markerpdf.New(markerpdf.WithEncoder(aruco.Encoder{}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, markerpdf.Job{
//	    Range:      markerpdf.Range{Start: 13, End: 14},
//	    Dictionary: markerpdf.DefaultDictionary,
//	    Paper:      paper,
//	    Layout:     markerpdf.LayoutDouble,
//	    Output:     "markers.pdf",
//	})
//
// # Pipeline
//
//  1. Marker bitmaps are encoded to PNG, one per ID, in parallel
//  2. IDs are planned into pages (one per sheet, or pairs side by side)
//  3. Each page becomes an SVG document with label, borders and cut lines
//  4. Each SVG is rendered to a one-page PDF (cairosvg, rsvg-convert or Chrome)
//  5. Pages are merged in ID order (pdfunite or pdfcpu) and verified
//
// Intermediate files live in a per-run temporary directory that is removed
// on return unless WithKeepTemp or WithWorkDir is used.
//
// # Errors
//
// Failures wrap the sentinel errors declared in errors.go and can be tested
// with errors.Is. Missing external tools are reported as *MissingToolError,
// joined when several are absent.
package markerpdf
