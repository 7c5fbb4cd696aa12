package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPseudoname(t *testing.T) {
	cases := map[string]string{
		"":                                     "Happy Panda",
		"a":                                    "Hungry Koala",
		"order-1":                              "Spicy Bear",
		"3f2b8c1e-9d4a-4b7e-8f21-6c5d0a9e7b13": "Crunchy Eagle",
		"00000000-0000-0000-0000-000000000000": "Happy Panda",
		"ffffffff-ffff-ffff-ffff-ffffffffffff": "Happy Panda",
	}
	for id, want := range cases {
		assert.Equal(t, want, Pseudoname(id), id)
	}
}

func TestPseudoname_Deterministic(t *testing.T) {
	id := "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d"
	assert.Equal(t, Pseudoname(id), Pseudoname(id))
}
