package constants

type contextKey int

const (
	PoolKey contextKey = iota
	TxKey
	LoggerKey
	RequestIDKey
)
