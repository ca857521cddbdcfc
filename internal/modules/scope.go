package modules

import (
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/yacobolo/scsstypes/internal/errs"
)

// scopeState maintains context while walking compiled CSS
type scopeState struct {
	locals   *Locals
	filename string
	source   string
	namer    Namer
	atRules  []string // open at-rule names, innermost last
	inExport bool     // inside an :export { } block
}

// Scope walks compiled CSS and returns its locally scoped names.
//
// Class selectors, id selectors and @keyframes names are local unless wrapped in
// :global(...) or preceded by a bare :global in the same selector. Declarations
// inside :export blocks are exported as-is.
func Scope(source, filename string, namer Namer) (*Locals, error) {
	if namer == nil {
		namer = DevelopmentNamer
	}

	state := &scopeState{
		locals:   NewLocals(),
		filename: filename,
		source:   source,
		namer:    namer,
	}

	p := css.NewParser(parse.NewInputString(source), false)

	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != io.EOF {
				return nil, errs.Wrapf(err, "parse %s", filename)
			}
			return state.locals, nil

		case css.BeginAtRuleGrammar:
			name := strings.ToLower(string(data))
			if isKeyframes(name) {
				state.handleKeyframes(p.Values())
			}
			state.atRules = append(state.atRules, name)

		case css.EndAtRuleGrammar:
			if len(state.atRules) > 0 {
				state.atRules = state.atRules[:len(state.atRules)-1]
			}

		case css.QualifiedRuleGrammar, css.BeginRulesetGrammar:
			if state.insideKeyframes() {
				continue
			}
			values := p.Values()
			if isExportSelector(values) {
				state.inExport = gt == css.BeginRulesetGrammar
				continue
			}
			if err := state.handleSelector(values); err != nil {
				return nil, errs.Wrapf(err, "%s", filename)
			}

		case css.EndRulesetGrammar:
			state.inExport = false

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if state.inExport {
				state.locals.Add(string(data), joinValues(p.Values()))
			}
		}
	}
}

// handleSelector records local class and id names of one selector
func (s *scopeState) handleSelector(tokens []css.Token) error {
	// modes[0] is the selector-level mode; each open parenthesis pushes one
	modes := []bool{true}
	local := func() bool { return modes[len(modes)-1] }

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		switch tok.TokenType {
		case css.CommaToken:
			if len(modes) == 1 {
				modes[0] = true
			}

		case css.ColonToken:
			if i+1 >= len(tokens) {
				continue
			}
			next := tokens[i+1]
			switch {
			case next.TokenType == css.IdentToken && strings.EqualFold(string(next.Data), "global"):
				modes[len(modes)-1] = false
				i++
			case next.TokenType == css.IdentToken && strings.EqualFold(string(next.Data), "local"):
				modes[len(modes)-1] = true
				i++
			case next.TokenType == css.FunctionToken && strings.EqualFold(string(next.Data), "global("):
				modes = append(modes, false)
				i++
			case next.TokenType == css.FunctionToken && strings.EqualFold(string(next.Data), "local("):
				modes = append(modes, true)
				i++
			}

		case css.FunctionToken, css.LeftParenthesisToken:
			// :not(, :is(, :nth-child( inherit the current mode
			modes = append(modes, local())

		case css.RightParenthesisToken:
			if len(modes) == 1 {
				return errs.New("unbalanced ')' in selector")
			}
			modes = modes[:len(modes)-1]

		case css.DelimToken:
			if string(tok.Data) != "." || i+1 >= len(tokens) || tokens[i+1].TokenType != css.IdentToken {
				continue
			}
			i++
			if local() {
				s.add(unescapeIdent(string(tokens[i].Data)))
			}

		case css.HashToken:
			if local() {
				s.add(unescapeIdent(strings.TrimPrefix(string(tok.Data), "#")))
			}
		}
	}

	if len(modes) != 1 {
		return errs.New("unclosed '(' in selector")
	}
	return nil
}

// handleKeyframes records the animation name of a @keyframes prelude
func (s *scopeState) handleKeyframes(prelude []css.Token) {
	local := true
	for i := 0; i < len(prelude); i++ {
		tok := prelude[i]
		switch tok.TokenType {
		case css.ColonToken:
			if i+1 < len(prelude) {
				switch strings.ToLower(string(prelude[i+1].Data)) {
				case "global(", "global":
					local = false
				}
				i++
			}
		case css.IdentToken:
			if local {
				s.add(unescapeIdent(string(tok.Data)))
			}
			return
		case css.StringToken:
			return
		}
	}
}

func (s *scopeState) add(name string) {
	if name == "" {
		return
	}
	s.locals.Add(name, s.namer(name, s.filename, s.source))
}

func (s *scopeState) insideKeyframes() bool {
	for _, name := range s.atRules {
		if isKeyframes(name) {
			return true
		}
	}
	return false
}

// isKeyframes matches @keyframes and its vendor-prefixed forms
func isKeyframes(atRule string) bool {
	return strings.HasSuffix(atRule, "keyframes")
}

// isExportSelector matches the ICSS ":export" pseudo selector
func isExportSelector(tokens []css.Token) bool {
	var significant []css.Token
	for _, tok := range tokens {
		if tok.TokenType != css.WhitespaceToken {
			significant = append(significant, tok)
		}
	}
	return len(significant) == 2 &&
		significant[0].TokenType == css.ColonToken &&
		significant[1].TokenType == css.IdentToken &&
		string(significant[1].Data) == "export"
}

// joinValues rebuilds a declaration value from its tokens
func joinValues(tokens []css.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.Write(tok.Data)
	}
	return strings.TrimSpace(b.String())
}

// unescapeIdent resolves CSS escapes (\: or \31 ) in an identifier
func unescapeIdent(ident string) string {
	if !strings.Contains(ident, `\`) {
		return ident
	}

	var b strings.Builder
	for i := 0; i < len(ident); i++ {
		c := ident[i]
		if c != '\\' || i+1 >= len(ident) {
			b.WriteByte(c)
			continue
		}

		// Hex escape: up to six hex digits, optionally followed by one space
		j := i + 1
		for j < len(ident) && j-i <= 6 && isHex(ident[j]) {
			j++
		}
		if j > i+1 {
			if r, err := strconv.ParseUint(ident[i+1:j], 16, 32); err == nil {
				b.WriteRune(rune(r))
			}
			if j < len(ident) && ident[j] == ' ' {
				j++
			}
			i = j - 1
			continue
		}

		b.WriteByte(ident[i+1])
		i++
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
