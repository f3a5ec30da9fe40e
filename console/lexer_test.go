package console

import "testing"

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexerModularExponentiation(t *testing.T) {
	tokens := NewLexer("3^7 mod 13").TokenizeAll()
	want := []TokenType{TokenNumber, TokenOperator, TokenNumber, TokenOperator, TokenNumber, TokenEOF}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), tokens)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d type = %s, want %s", i, got[i], want[i])
		}
	}
	if tokens[3].Value != "mod" {
		t.Errorf("expected the 'mod' keyword to lex as an operator token, got %q", tokens[3].Value)
	}
}

func TestLexerFunctionCall(t *testing.T) {
	tokens := NewLexer("gcd(462,1071)").TokenizeAll()
	want := []TokenType{TokenIdent, TokenLParen, TokenNumber, TokenComma, TokenNumber, TokenRParen, TokenEOF}
	got := tokenTypes(tokens)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), tokens)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d type = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexerTaggedLiteral(t *testing.T) {
	tokens := NewLexer("1a2b#16").TokenizeAll()
	if len(tokens) != 2 || tokens[0].Type != TokenTagged || tokens[0].Value != "1a2b#16" {
		t.Fatalf("unexpected tokens: %+v", tokens)
	}
}

func TestLexerValueRef(t *testing.T) {
	tokens := NewLexer("$1 + 1").TokenizeAll()
	if tokens[0].Type != TokenValueRef || tokens[0].Value != "$1" {
		t.Fatalf("unexpected first token: %+v", tokens[0])
	}
}

func TestLexerHexAndBinaryLiterals(t *testing.T) {
	tokens := NewLexer("0xff + 0b101").TokenizeAll()
	if tokens[0].Type != TokenNumber || tokens[0].Value != "0xff" {
		t.Errorf("expected 0xff, got %+v", tokens[0])
	}
	if tokens[2].Type != TokenNumber || tokens[2].Value != "0b101" {
		t.Errorf("expected 0b101, got %+v", tokens[2])
	}
}

func TestLexerSkipsWhitespace(t *testing.T) {
	tokens := NewLexer("  gcd( 1 ,  2 )  ").TokenizeAll()
	if len(tokens) != 7 {
		t.Fatalf("expected 7 tokens, got %d: %+v", len(tokens), tokens)
	}
}
