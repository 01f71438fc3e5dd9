package animals

import (
	"bytes"
	"testing"
)

func TestMoveAndSpeakDispatch(t *testing.T) {
	cases := []struct {
		animal Animal
		want   string
	}{
		{animal: NewDog("Rex"), want: "Rex runs happily on four legs! 🐕\nWoof! Woof!\n"},
		{animal: NewFish("Nemo"), want: "Nemo swims gracefully through the water! 🐟\nBlub blub...\n"},
		{animal: NewBird("Eagle"), want: "Eagle soars through the sky! 🦅\nChirp! Chirp!\n"},
		{animal: NewGeneric("Blob"), want: "Blob is moving in a generic way\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		tc.animal.Move(&buf)
		tc.animal.Speak(&buf)
		if buf.String() != tc.want {
			t.Fatalf("%s: got %q want %q", tc.animal.Name(), buf.String(), tc.want)
		}
	}
}
