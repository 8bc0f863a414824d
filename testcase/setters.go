package testcase

// SetName returns an UpdateSetter that sets the test case's name.
func SetName(name string) UpdateSetter {
	return func(tc *TestCase) error {
		if name == "" {
			return ErrInvalidName
		}
		tc.Name = name
		return nil
	}
}

// SetDes returns an UpdateSetter that sets the test case's description.
func SetDes(des string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Des = des
		return nil
	}
}

// SetDesigner returns an UpdateSetter that sets the test case's designer.
func SetDesigner(designer string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Designer = designer
		return nil
	}
}

// SetModuleID returns an UpdateSetter that moves the test case to a module.
func SetModuleID(moduleID uint) UpdateSetter {
	return func(tc *TestCase) error {
		tc.ModuleID = moduleID
		return nil
	}
}

// SetVersion returns an UpdateSetter that sets the test case's version label.
func SetVersion(version string) UpdateSetter {
	return func(tc *TestCase) error {
		tc.Version = version
		return nil
	}
}
