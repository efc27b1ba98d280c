//go:build !zarinpaldebug

package zarinpal

func captureCaller() string { return "" }
