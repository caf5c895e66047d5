package ports

// ToolLocator resolves executable names against the search path.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ToolLocator interface {
	// Look returns the resolved path of the named executable and whether
	// it was found.
	Look(name string) (string, bool)
}
