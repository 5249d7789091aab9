package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	assert.Equal(t, Currency("USD"), Currency("USD"))
	assert.NotEqual(t, Currency("USD"), Currency("EUR"))
	assert.NotEqual(t, Currency("VTI"), Security("VTI"), "currency and security with the same symbol are distinct")
	assert.Equal(t, Security("VTI"), Security("VTI"))
	assert.NotEqual(t, Security("VTI"), SecurityLot("VTI", "lot-1"), "lots are part of identity")
	assert.NotEqual(t, SecurityLot("VTI", "lot-1"), SecurityLot("VTI", "lot-2"))
}

func TestMapKey(t *testing.T) {
	m := map[Asset]int{
		Currency("USD"):            1,
		Security("VTI"):            2,
		SecurityLot("VTI", "lot1"): 3,
	}
	assert.Equal(t, 1, m[Currency("USD")])
	assert.Equal(t, 2, m[Security("VTI")])
	assert.Equal(t, 3, m[SecurityLot("VTI", "lot1")])
}

func TestWithoutLot(t *testing.T) {
	assert.Equal(t, Security("VTI"), SecurityLot("VTI", "lot-1").WithoutLot())
	assert.Equal(t, Security("VTI"), Security("VTI").WithoutLot())
	assert.Equal(t, Currency("USD"), Currency("USD").WithoutLot())
}

func TestString(t *testing.T) {
	tests := []struct {
		asset Asset
		want  string
	}{
		{Currency("USD"), "USD"},
		{Security("VTI"), "VTI"},
		{SecurityLot("VTI", "lot-1"), "VTI[lot-1]"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.asset.String())
	}
}
