// Package volatility implements the range and band indicators: true range, ATR, Bollinger
// bands, the price (Donchian) channel, the Keltner channel and the rolling standard deviation.
package volatility
