package health

// New selects the provider for this runtime. A configured bridge database
// means the platform can supply biometric data; anything else resolves to the
// unsupported fallback rather than a runtime probe for an optional dependency.
func New(dbPath string) (Provider, error) {
	if dbPath == "" {
		return NewUnsupportedProvider(), nil
	}

	return NewSQLiteProvider(dbPath)
}
