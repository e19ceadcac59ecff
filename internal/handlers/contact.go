package handlers

import (
	"github.com/Vinay-Pratap-Singh/LMS-Genie-Client/internal/catalog"
)

// ContactView is the payload of the contact page.
type ContactView struct {
	Hero HeroView

	BranchesTitle string
	BranchesCopy  string
	Branches      []catalog.BranchCard

	SectionTitle string
	DetailsCopy  string
	Details      []DetailRow

	Form FormView

	MapTitle string
	MapURL   string
}

// DetailRow is one label/value pair of the contact details list.
type DetailRow struct {
	Label string
	Value string
}

// FormView is the contact form fragment. It is re-rendered whole on submit and per field on
// validation.
type FormView struct {
	ID        string
	Action    string
	Title     string
	Copy      string
	CSRFToken string
	Fields    []FieldView
	Submit    ButtonView
	Sent      bool
	SentLabel string
}

// Field returns the named field view.
func (f FormView) Field(name string) (FieldView, bool) {
	for _, fv := range f.Fields {
		if fv.Name == name {
			return fv, true
		}
	}
	return FieldView{}, false
}

// HasErrors reports whether any field carries a message.
func (f FormView) HasErrors() bool {
	for _, fv := range f.Fields {
		if fv.Error != "" {
			return true
		}
	}
	return false
}

// FieldView feeds the shared form-field partial: label, control and message.
type FieldView struct {
	Name         string
	Label        string
	Placeholder  string
	Value        string
	Error        string
	InputType    string
	Multiline    bool
	ValidateURL  string
	Autocomplete string
	Half         bool
}

// ID is the DOM id of the field wrapper.
func (f FieldView) ID() string { return "field-" + f.Name }

// ErrorID is the DOM id of the message element.
func (f FieldView) ErrorID() string { return "field-" + f.Name + "-error" }
