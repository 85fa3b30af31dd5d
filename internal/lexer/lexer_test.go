package lexer

import (
	"testing"

	"github.com/arborjs/jsparse/internal/arena"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	a := arena.New(src)
	l := New(a)
	var toks []Token
	for {
		tok := l.Token()
		toks = append(toks, tok)
		if tok.Type == EOF {
			break
		}
		l.Advance()
	}
	return toks
}

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func assertTypes(t *testing.T, src string, want ...TokenType) {
	t.Helper()
	got := types(tokenize(t, src))
	if len(got) != len(want) {
		t.Fatalf("tokenize(%q) = %v, want %v", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tokenize(%q)[%d] = %s, want %s", src, i, got[i], want[i])
		}
	}
}

func TestPunctuatorDisambiguation(t *testing.T) {
	assertTypes(t, ">", Gt, EOF)
	assertTypes(t, ">>", Shr, EOF)
	assertTypes(t, ">>>", Sar, EOF)
	assertTypes(t, ">>>=", AssignSar, EOF)
	assertTypes(t, ">>=", AssignShr, EOF)
	assertTypes(t, ">=", Gte, EOF)
}

func TestIdentifiersAndKeywords(t *testing.T) {
	assertTypes(t, "let x = foo", KeywordLet, Identifier, Assign, Identifier, EOF)
}

func TestNumberRadixes(t *testing.T) {
	assertTypes(t, "0b101", LiteralBinary, EOF)
	assertTypes(t, "0o17", LiteralOctal, EOF)
	assertTypes(t, "0xFF", LiteralHex, EOF)
	assertTypes(t, "1.5e10", LiteralNumber, EOF)
	assertTypes(t, ".5", LiteralNumber, EOF)
}

func TestStringUnterminated(t *testing.T) {
	assertTypes(t, `"abc`, UnexpectedEndOfProgram, EOF)
}

func TestCommentsAreTransparent(t *testing.T) {
	assertTypes(t, "// comment\nlet x", KeywordLet, Identifier, EOF)
	assertTypes(t, "/* multi\nline */ let", KeywordLet, EOF)
}

func TestASIAfterNewline(t *testing.T) {
	a := arena.New("return\nx")
	l := New(a)
	if l.Token().Type != KeywordReturn {
		t.Fatalf("first token = %s", l.Token().Type)
	}
	l.Advance()
	if l.Token().ASI() != ASIImplicit {
		t.Fatalf("ASI after newline = %v, want Implicit", l.Token().ASI())
	}
}

func TestASIExplicitSemicolon(t *testing.T) {
	a := arena.New(";")
	l := New(a)
	if l.Token().ASI() != ASIExplicit {
		t.Fatalf("ASI for `;` = %v, want Explicit", l.Token().ASI())
	}
}

func TestASIAfterBraceAndParen(t *testing.T) {
	a := arena.New("}")
	l := New(a)
	if l.Token().ASI() != ASIImplicit {
		t.Fatalf("ASI for `}` = %v, want Implicit", l.Token().ASI())
	}

	a = arena.New(")")
	l = New(a)
	if l.Token().ASI() != ASIImplicit {
		t.Fatalf("ASI for `)` = %v, want Implicit", l.Token().ASI())
	}
}

func TestTemplateLiteralNoInterpolation(t *testing.T) {
	a := arena.New("`hello`")
	l := New(a)
	if l.Token().Type != TemplateClosed {
		t.Fatalf("type = %s, want TemplateClosed", l.Token().Type)
	}
	if l.QuasiText() != "hello" {
		t.Fatalf("QuasiText() = %q, want %q", l.QuasiText(), "hello")
	}
}

func TestTemplateLiteralWithInterpolation(t *testing.T) {
	a := arena.New("`foo${1+2}bar`")
	l := New(a)
	if l.Token().Type != TemplateOpen {
		t.Fatalf("type = %s, want TemplateOpen", l.Token().Type)
	}
	if l.QuasiText() != "foo" {
		t.Fatalf("QuasiText() = %q, want %q", l.QuasiText(), "foo")
	}
	l.Advance() // `1`
	if l.Token().Type != LiteralNumber {
		t.Fatalf("type = %s, want LiteralNumber", l.Token().Type)
	}
	l.Advance() // `+`
	l.Advance() // `2`
	l.Advance() // `}`
	if l.Token().Type != RBrace {
		t.Fatalf("type = %s, want RBrace", l.Token().Type)
	}
	cont := l.ReadTemplateKind()
	if cont.Type != TemplateClosed {
		t.Fatalf("continuation type = %s, want TemplateClosed", cont.Type)
	}
	if l.QuasiText() != "bar" {
		t.Fatalf("QuasiText() = %q, want %q", l.QuasiText(), "bar")
	}
}

func TestRegexRescan(t *testing.T) {
	a := arena.New("/ab[c/]d/gi")
	l := New(a)
	if l.Token().Type != Div {
		t.Fatalf("initial type = %s, want Div", l.Token().Type)
	}
	tok := l.ReadRegularExpression()
	if tok.Type != LiteralRegex {
		t.Fatalf("regex type = %s, want LiteralRegex", tok.Type)
	}
	text := a.Text(tok.Start, tok.End)
	if text != "/ab[c/]d/gi" {
		t.Fatalf("regex text = %q", text)
	}
}

func TestAccessorAcceptsKeywordShapedName(t *testing.T) {
	a := arena.New("foo.function")
	l := New(a)
	if l.Token().Type != Identifier {
		t.Fatalf("type = %s, want Identifier", l.Token().Type)
	}
	l.Advance() // .
	if l.Token().Type != Period {
		t.Fatalf("type = %s, want Period", l.Token().Type)
	}
	tok := l.ReadAccessor()
	if tok.Type != AccessorIdentifier {
		t.Fatalf("type = %s, want AccessorIdentifier", tok.Type)
	}
	if l.AccessorText() != "function" {
		t.Fatalf("AccessorText() = %q", l.AccessorText())
	}
}

func TestEmptyInputIsEOF(t *testing.T) {
	assertTypes(t, "", EOF)
}
