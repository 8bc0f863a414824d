package globalparam

// SetKey returns an UpdateSetter that renames the parameter.
func SetKey(key string) UpdateSetter {
	return func(g *GlobalParam) error {
		if key == "" {
			return ErrInvalidParamKey
		}
		g.ParamsKey = key
		return nil
	}
}

// SetValue returns an UpdateSetter that sets the parameter's value.
func SetValue(value string) UpdateSetter {
	return func(g *GlobalParam) error {
		g.ParamsValue = value
		return nil
	}
}
