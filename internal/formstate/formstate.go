// Package formstate models the client-side form as a pure state machine:
// Reduce(state, action) returns the next state without mutating the input,
// so the form logic is testable independently of any rendering layer.
package formstate

import "formsubmit/internal/validation"

// State is the transient client-side form container. It is never persisted.
type State struct {
	Values validation.Values
	// Errors maps field name to its current message; "" means valid.
	Errors map[string]string
	// Message is the single submission-level feedback slot.
	Message string
}

// Initial returns a fresh form: empty values, the three fixed subject keys
// unchecked, and no error messages.
func Initial() State {
	subjects := make(map[string]bool, len(validation.SubjectNames))
	for _, name := range validation.SubjectNames {
		subjects[name] = false
	}
	return State{
		Values: validation.Values{Subjects: subjects},
		Errors: map[string]string{},
	}
}

// Action is a form event consumed by Reduce.
type Action interface{ isAction() }

// FieldChanged updates one scalar field and re-validates only that field.
type FieldChanged struct {
	Name  string
	Value string
}

// FileChosen sets or clears the résumé selection.
type FileChosen struct {
	File *validation.FileMeta
}

// SubjectToggled flips one of the fixed subject checkboxes. Unknown subject
// names are ignored rather than added.
type SubjectToggled struct {
	Name    string
	Checked bool
}

// Reset restores the form to its defaults, clearing every error message.
type Reset struct{}

// Submitted runs the whole-form gate and records every field's message.
type Submitted struct{}

// SubmissionSucceeded clears the form and shows the success message.
type SubmissionSucceeded struct{ ID string }

// SubmissionFailed keeps the form intact for retry and shows the message.
type SubmissionFailed struct{ Message string }

func (FieldChanged) isAction()        {}
func (FileChosen) isAction()          {}
func (SubjectToggled) isAction()      {}
func (Reset) isAction()               {}
func (Submitted) isAction()           {}
func (SubmissionSucceeded) isAction() {}
func (SubmissionFailed) isAction()    {}

// Reduce applies one action to the form and returns the next state.
func Reduce(s State, a Action) State {
	next := clone(s)
	switch act := a.(type) {
	case FieldChanged:
		value := act.Value
		if act.Name == "contact" {
			value = validation.StripNonDigits(value)
		}
		setField(&next.Values, act.Name, value)
		next.Errors[act.Name] = validation.Field(act.Name, value)
	case FileChosen:
		next.Values.Resume = act.File
		next.Errors["resume"] = validation.Resume(act.File)
	case SubjectToggled:
		if _, ok := next.Values.Subjects[act.Name]; ok {
			next.Values.Subjects[act.Name] = act.Checked
		}
	case Reset:
		return Initial()
	case Submitted:
		errs, _ := validation.All(next.Values)
		next.Errors = errs
	case SubmissionSucceeded:
		next = Initial()
		next.Message = "Submitted successfully"
	case SubmissionFailed:
		next.Message = act.Message
	}
	return next
}

// Valid reports whether the whole-form gate passes for the current values.
func (s State) Valid() bool {
	_, ok := validation.All(s.Values)
	return ok
}

func setField(v *validation.Values, name, value string) {
	switch name {
	case "firstName":
		v.FirstName = value
	case "lastName":
		v.LastName = value
	case "email":
		v.Email = value
	case "contact":
		v.Contact = value
	case "gender":
		v.Gender = value
	case "url":
		v.URL = value
	case "select":
		v.Select = value
	case "about":
		v.About = value
	}
}

func clone(s State) State {
	next := s
	next.Errors = make(map[string]string, len(s.Errors))
	for k, v := range s.Errors {
		next.Errors[k] = v
	}
	next.Values.Subjects = make(map[string]bool, len(s.Values.Subjects))
	for k, v := range s.Values.Subjects {
		next.Values.Subjects[k] = v
	}
	return next
}
