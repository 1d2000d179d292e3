package ports

// Notifier surfaces short user-visible messages, such as a toast.
// Calls are fire-and-forget.
//
//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=mocks/mock_notifier.go -package=mocks
type Notifier interface {
	Notify(message string)
}
