/*
 * alda-go
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"strings"
	"testing"
)

func tokenString(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func TestScanNotes(t *testing.T) {
	tokens, err := Scan("c d e f", "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `NOTE_LETTER(c) NOTE_LETTER(d) NOTE_LETTER(e) NOTE_LETTER(f) EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanAccidentalsAndDuration(t *testing.T) {
	tokens, err := Scan("c+4.", "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `NOTE_LETTER(c) SHARP "+" NOTE_LENGTH(4) DOT "." EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanRestAndOctave(t *testing.T) {
	tokens, err := Scan("o3 r2 > <", "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `OCTAVE_SET(3) REST_LETTER "r" NOTE_LENGTH(2) OCTAVE_UP ">" OCTAVE_DOWN "<" EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanNoteLengthMsAndSeconds(t *testing.T) {
	tokens, err := Scan("c500ms d2s", "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `NOTE_LETTER(c) NOTE_LENGTH_MS(500) NOTE_LETTER(d) NOTE_LENGTH_S(2) EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanChordAndBarline(t *testing.T) {
	tokens, err := Scan("c/e/g | d", "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `NOTE_LETTER(c) SEPARATOR "/" NOTE_LETTER(e) SEPARATOR "/" NOTE_LETTER(g) BARLINE "|" NOTE_LETTER(d) EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanPartDeclaration(t *testing.T) {
	tokens, err := Scan(`piano "keys": c`, "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `NAME "piano" ALIAS "\"keys\"" COLON ":" NOTE_LETTER(c) EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanLispSexp(t *testing.T) {
	tokens, err := Scan(`(tempo! 120)`, "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `LEFT_PAREN "(" SYMBOL "tempo!" NUMBER(120) RIGHT_PAREN ")" EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanLispString(t *testing.T) {
	tokens, err := Scan(`(set-key "C major")`, "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `LEFT_PAREN "(" SYMBOL "set-key" STRING "\"C major\"" RIGHT_PAREN ")" EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanMarkersAndRepeat(t *testing.T) {
	tokens, err := Scan(`%verse c *4 '1,2`, "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `MARKER "%verse" NOTE_LETTER(c) REPEAT(4) REPETITIONS "'1,2" EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanVoiceMarker(t *testing.T) {
	tokens, err := Scan(`V1: c V0:`, "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `VOICE_MARKER "V1:" NOTE_LETTER(c) VOICE_MARKER "V0:" EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanCramAndBracket(t *testing.T) {
	tokens, err := Scan(`{c d e}4 [c d e]`, "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `CRAM_OPEN "{" NOTE_LETTER(c) NOTE_LETTER(d) NOTE_LETTER(e) CRAM_CLOSE "}" NOTE_LENGTH(4) ` +
		`BRACKET_OPEN "[" NOTE_LETTER(c) NOTE_LETTER(d) NOTE_LETTER(e) BRACKET_CLOSE "]" EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanComment(t *testing.T) {
	tokens, err := Scan("c # a comment\nd", "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `NOTE_LETTER(c) NEWLINE "\n" NOTE_LETTER(d) EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanEmptySource(t *testing.T) {
	tokens, err := Scan("", "")
	if err != nil {
		t.Fatal(err)
	}

	if len(tokens) != 1 || tokens[0].Kind != TokenEOF {
		t.Errorf("Expected a single EOF token for empty source, got: %v", tokenString(tokens))
	}
}

func TestScanUnterminatedAlias(t *testing.T) {
	_, err := Scan(`piano "keys: c`, "test.alda")
	if err == nil {
		t.Fatal("Expected an unterminated string error")
	}

	if !isScanError(err) {
		t.Errorf("Expected ErrScanError, got: %v", err)
	}

	expected := "test.alda:1:7: Scan error: Unterminated string\n  piano \"keys: c\n        ^"
	if res := err.Error(); res != expected {
		t.Errorf("Unexpected error message:\n%v\nexpected:\n%v", res, expected)
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, err := Scan("c $ d", "test.alda")
	if err == nil {
		t.Fatal("Expected an unexpected character error")
	}

	if !isScanError(err) {
		t.Errorf("Expected ErrScanError, got: %v", err)
	}

	lines := strings.Split(err.Error(), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected a 3-line error message, got:\n%v", err.Error())
	}
	if !strings.HasPrefix(lines[0], "test.alda:1:3: Scan error") {
		t.Errorf("Unexpected error header: %v", lines[0])
	}
	if lines[1] != "  c $ d" {
		t.Errorf("Unexpected source line: %q", lines[1])
	}
	if lines[2] != "    ^" {
		t.Errorf("Unexpected caret line: %q", lines[2])
	}
}

func isScanError(err error) bool {
	perr, ok := err.(*Error)
	return ok && perr.Type == ErrScanError
}

func TestScannerDispatchesAcrossLines(t *testing.T) {
	tokens, err := Scan("piano:\n  c d\n  e f\n", "")
	if err != nil {
		t.Fatal(err)
	}

	expected := `NAME "piano" COLON ":" NEWLINE "\n" NOTE_LETTER(c) NOTE_LETTER(d) NEWLINE "\n" NOTE_LETTER(e) NOTE_LETTER(f) NEWLINE "\n" EOF`
	if res := tokenString(tokens); res != expected {
		t.Errorf("Unexpected token stream:\n%v\nexpected:\n%v", res, expected)
	}
}

func ExampleScan() {
	tokens, _ := Scan("c4 d", "")
	fmt.Println(tokenString(tokens))
	// Output: NOTE_LETTER(c) NOTE_LENGTH(4) NOTE_LETTER(d) EOF
}
