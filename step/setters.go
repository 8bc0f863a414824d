package step

// SetCaseID returns an UpdateSetter that moves the step to another case.
// A caseID of 0 detaches the step.
func SetCaseID(caseID uint) UpdateSetter {
	return func(s *Step) error {
		s.CaseID = caseID
		return nil
	}
}

// SetSort returns an UpdateSetter that sets the step's ordering key.
func SetSort(sort int) UpdateSetter {
	return func(s *Step) error {
		s.Sort = sort
		return nil
	}
}

// SetContent returns an UpdateSetter that sets the step's content.
func SetContent(content string) UpdateSetter {
	return func(s *Step) error {
		s.Content = content
		return nil
	}
}

// SetText returns an UpdateSetter that sets the step's text.
func SetText(text string) UpdateSetter {
	return func(s *Step) error {
		s.Text = text
		return nil
	}
}

// SetDisabled returns an UpdateSetter that enables or disables the step.
func SetDisabled(disabled bool) UpdateSetter {
	return func(s *Step) error {
		s.Disabled = disabled
		return nil
	}
}
