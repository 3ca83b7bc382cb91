// Package pdf renders generated lesson plans into PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/lessonplanner/backend/internal/models"
)

// Renderer produces a printable PDF from a stored lesson plan.
type Renderer struct{}

// NewRenderer creates a new PDF renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render lays out the plan title, the submitted parameters, and the three
// generated sections, and returns the document bytes.
func (r *Renderer) Render(plan *models.LessonPlan) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetTitle(fmt.Sprintf("Lesson Plan: %s", plan.Topic), true)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(0, 9, fmt.Sprintf("Lesson Plan: %s", plan.Topic), "", "L", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(90, 90, 90)
	doc.MultiCell(0, 5, fmt.Sprintf("Grade Level: %s", plan.GradeLevel), "", "L", false)
	doc.MultiCell(0, 5, fmt.Sprintf("Main Concept: %s", plan.MainConcept), "", "L", false)
	doc.MultiCell(0, 5, fmt.Sprintf("Generated: %s", plan.CreatedAt.Format("2006-01-02 15:04")), "", "L", false)
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)

	r.writeSection(doc, "Overview", plan.Overview)
	r.writeSection(doc, "Activities", plan.Activities)
	r.writeSection(doc, "Assessment", plan.Assessment)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// writeSection emits a heading followed by the section body text.
func (r *Renderer) writeSection(doc *gofpdf.Fpdf, heading, body string) {
	doc.SetFont("Helvetica", "B", 13)
	doc.MultiCell(0, 7, heading, "", "L", false)
	doc.Ln(1)

	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(0, 6, body, "", "L", false)
	doc.Ln(4)
}
