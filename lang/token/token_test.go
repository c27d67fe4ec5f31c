package token

import "testing"

func TestTokenString(t *testing.T) {
	for tok := Token(0); tok < maxToken; tok++ {
		if tok.String() == "" {
			t.Errorf("missing string representation of token %d", tok)
		}
	}
}

func TestBinop(t *testing.T) {
	cases := []struct {
		aug  Token
		want Token
	}{
		{PLUS_EQ, PLUS},
		{MINUS_EQ, MINUS},
		{STAR_EQ, STAR},
		{SLASH_EQ, SLASH},
		{PERCENT_EQ, PERCENT},
		{CIRCUMFLEX_EQ, CIRCUMFLEX},
	}
	for _, c := range cases {
		if got := c.aug.Binop(); got != c.want {
			t.Errorf("%s.Binop() = %s, want %s", c.aug, got, c.want)
		}
	}
}

func TestBinopPanicsOnNonAug(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non compound-assignment token")
		}
	}()
	PLUS.Binop()
}
