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

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/common/stringutil"
)

/*
NodeType identifies the kind of an ASTNode. This is a closed set.
*/
type NodeType string

/*
AST node type constants - see spec §4.3 for the full catalogue.
*/
const (
	NodeRoot      NodeType = "ROOT"
	NodePartDecl  NodeType = "PART_DECL"
	NodeEventSeq  NodeType = "EVENT_SEQ"
	NodeNote      NodeType = "NOTE"
	NodeRest      NodeType = "REST"
	NodeChord     NodeType = "CHORD"
	NodeBarline   NodeType = "BARLINE"
	NodeDuration  NodeType = "DURATION"
	NodeNoteLen   NodeType = "NOTE_LENGTH"
	NodeNoteLenMs NodeType = "NOTE_LENGTH_MS"
	NodeNoteLenS  NodeType = "NOTE_LENGTH_S"
	NodeOctaveSet NodeType = "OCTAVE_SET"
	NodeOctaveUp  NodeType = "OCTAVE_UP"
	NodeOctaveDn  NodeType = "OCTAVE_DOWN"
	NodeLispList  NodeType = "LISP_LIST"
	NodeLispSym   NodeType = "LISP_SYMBOL"
	NodeLispNum   NodeType = "LISP_NUMBER"
	NodeLispStr   NodeType = "LISP_STRING"
	NodeVarDef    NodeType = "VAR_DEF"
	NodeVarRef    NodeType = "VAR_REF"
	NodeMarker    NodeType = "MARKER"
	NodeAtMarker  NodeType = "AT_MARKER"
	NodeVoiceGrp  NodeType = "VOICE_GROUP"
	NodeVoice     NodeType = "VOICE"
	NodeCram      NodeType = "CRAM"
	NodeBracketSq NodeType = "BRACKET_SEQ"
	NodeRepeat    NodeType = "REPEAT"
	NodeOnReps    NodeType = "ON_REPS"
)

/*
ASTNode is a node in the Alda abstract syntax tree. Nodes form owned
intrusive sibling lists via Next: a container node points at the head of
a sibling-linked child list, and the value/composite fields below hold
any further owned sub-trees.

Every node's Pos equals the position of the first token consumed to
produce it (spec §3.3).
*/
type ASTNode struct {
	Type NodeType
	Pos  Position
	Next *ASTNode // sibling link, nil if this is the last node in its list

	// Container payloads - ordered sibling-linked child lists

	Children *ASTNode // ROOT
	Events   *ASTNode // EVENT_SEQ, BRACKET_SEQ, CRAM, VOICE, VAR_DEF (events)
	Notes    *ASTNode // CHORD
	Comps    *ASTNode // DURATION (components)
	Elements *ASTNode // LISP_LIST
	Voices   *ASTNode // VOICE_GROUP

	// Composite/value payloads

	Names        []string // PART_DECL
	Alias        string   // PART_DECL, optional ("" = absent)
	Letter       byte     // NOTE
	Accidentals  string   // NOTE, optional
	Duration     *ASTNode // NOTE, REST, CRAM, optional
	Slurred      bool     // NOTE
	Denominator  int      // NOTE_LENGTH
	Dots         int      // NOTE_LENGTH
	Ms           int      // NOTE_LENGTH_MS
	Seconds      float64  // NOTE_LENGTH_S
	Octave       int      // OCTAVE_SET
	Name         string   // LISP_SYMBOL, VAR_DEF, VAR_REF, MARKER, AT_MARKER
	NumberValue  float64  // LISP_NUMBER
	StringValue  string   // LISP_STRING
	VoiceNumber  int      // VOICE
	Event        *ASTNode // REPEAT, ON_REPS
	Count        int      // REPEAT
	Reps         []string // ON_REPS, left empty - see spec §9
	RepsLexeme   string   // ON_REPS, raw lexeme of the REPETITIONS token
}

/*
newNode creates a bare node of the given type and position.
*/
func newNode(t NodeType, pos Position) *ASTNode {
	return &ASTNode{Type: t, Pos: pos}
}

/*
appendSibling appends node to the sibling list headed by *list. If *list
is nil, node becomes the new head.
*/
func appendSibling(list **ASTNode, node *ASTNode) {
	if node == nil {
		return
	}
	if *list == nil {
		*list = node
		return
	}
	cur := *list
	for cur.Next != nil {
		cur = cur.Next
	}
	cur.Next = node
}

/*
siblings returns the nodes in a sibling-linked list as a slice, head
first. Returns nil for an empty list.
*/
func siblings(head *ASTNode) []*ASTNode {
	var out []*ASTNode
	for n := head; n != nil; n = n.Next {
		out = append(out, n)
	}
	return out
}

/*
count returns the number of nodes in a sibling-linked list.
*/
func count(head *ASTNode) int {
	n := 0
	for c := head; c != nil; c = c.Next {
		n++
	}
	return n
}

// Node constructors
// =================
// The PART_DECL, CHORD, DURATION and VOICE_GROUP constructors enforce
// their shape invariants with errorutil.AssertTrue, mirroring how the
// teacher guards its own AST and runtime invariants. The other
// constructors check nothing; newRepeatNode accepts any count.

func newRoot(pos Position) *ASTNode {
	return newNode(NodeRoot, pos)
}

func newPartDecl(names []string, alias string, pos Position) *ASTNode {
	errorutil.AssertTrue(len(names) >= 1, "PART_DECL requires at least one name")
	n := newNode(NodePartDecl, pos)
	n.Names = names
	n.Alias = alias
	return n
}

func newEventSeq(events *ASTNode, pos Position) *ASTNode {
	n := newNode(NodeEventSeq, pos)
	n.Events = events
	return n
}

func newNoteNode(letter byte, accidentals string, duration *ASTNode, slurred bool, pos Position) *ASTNode {
	n := newNode(NodeNote, pos)
	n.Letter = letter
	n.Accidentals = accidentals
	n.Duration = duration
	n.Slurred = slurred
	return n
}

func newRestNode(duration *ASTNode, pos Position) *ASTNode {
	n := newNode(NodeRest, pos)
	n.Duration = duration
	return n
}

func newChordNode(notes *ASTNode, pos Position) *ASTNode {
	errorutil.AssertTrue(count(notes) >= 2, "CHORD requires at least two notes")
	for _, m := range siblings(notes) {
		errorutil.AssertTrue(m.Type == NodeNote || m.Type == NodeRest,
			"CHORD members must be NOTE or REST")
	}
	n := newNode(NodeChord, pos)
	n.Notes = notes
	return n
}

func newBarlineNode(pos Position) *ASTNode { return newNode(NodeBarline, pos) }

func newDurationNode(comps *ASTNode, pos Position) *ASTNode {
	errorutil.AssertTrue(comps != nil, "DURATION requires at least one component")
	for _, c := range siblings(comps) {
		errorutil.AssertTrue(c.Type == NodeNoteLen || c.Type == NodeNoteLenMs || c.Type == NodeNoteLenS,
			"DURATION components must be NOTE_LENGTH, NOTE_LENGTH_MS or NOTE_LENGTH_S")
	}
	n := newNode(NodeDuration, pos)
	n.Comps = comps
	return n
}

func newNoteLengthNode(denominator, dots int, pos Position) *ASTNode {
	n := newNode(NodeNoteLen, pos)
	n.Denominator = denominator
	n.Dots = dots
	return n
}

func newNoteLengthMsNode(ms int, pos Position) *ASTNode {
	n := newNode(NodeNoteLenMs, pos)
	n.Ms = ms
	return n
}

func newNoteLengthSNode(seconds float64, pos Position) *ASTNode {
	n := newNode(NodeNoteLenS, pos)
	n.Seconds = seconds
	return n
}

func newOctaveSetNode(octave int, pos Position) *ASTNode {
	n := newNode(NodeOctaveSet, pos)
	n.Octave = octave
	return n
}

func newOctaveUpNode(pos Position) *ASTNode   { return newNode(NodeOctaveUp, pos) }
func newOctaveDownNode(pos Position) *ASTNode { return newNode(NodeOctaveDn, pos) }

func newLispListNode(elements *ASTNode, pos Position) *ASTNode {
	n := newNode(NodeLispList, pos)
	n.Elements = elements
	return n
}

func newLispSymbolNode(name string, pos Position) *ASTNode {
	n := newNode(NodeLispSym, pos)
	n.Name = name
	return n
}

func newLispNumberNode(value float64, pos Position) *ASTNode {
	n := newNode(NodeLispNum, pos)
	n.NumberValue = value
	return n
}

func newLispStringNode(value string, pos Position) *ASTNode {
	n := newNode(NodeLispStr, pos)
	n.StringValue = value
	return n
}

func newVarDefNode(name string, events *ASTNode, pos Position) *ASTNode {
	n := newNode(NodeVarDef, pos)
	n.Name = name
	n.Events = events
	return n
}

func newVarRefNode(name string, pos Position) *ASTNode {
	n := newNode(NodeVarRef, pos)
	n.Name = name
	return n
}

func newMarkerNode(name string, pos Position) *ASTNode {
	n := newNode(NodeMarker, pos)
	n.Name = name
	return n
}

func newAtMarkerNode(name string, pos Position) *ASTNode {
	n := newNode(NodeAtMarker, pos)
	n.Name = name
	return n
}

func newVoiceGroupNode(voices *ASTNode, pos Position) *ASTNode {
	for _, v := range siblings(voices) {
		errorutil.AssertTrue(v.Type == NodeVoice, "VOICE_GROUP children must be VOICE")
		errorutil.AssertTrue(v.VoiceNumber > 0, "VOICE_GROUP voice numbers must be > 0")
	}
	n := newNode(NodeVoiceGrp, pos)
	n.Voices = voices
	return n
}

func newVoiceNode(number int, events *ASTNode, pos Position) *ASTNode {
	n := newNode(NodeVoice, pos)
	n.VoiceNumber = number
	n.Events = events
	return n
}

func newCramNode(events *ASTNode, duration *ASTNode, pos Position) *ASTNode {
	n := newNode(NodeCram, pos)
	n.Events = events
	n.Duration = duration
	return n
}

func newBracketSeqNode(events *ASTNode, pos Position) *ASTNode {
	n := newNode(NodeBracketSq, pos)
	n.Events = events
	return n
}

func newRepeatNode(event *ASTNode, cnt int, pos Position) *ASTNode {
	n := newNode(NodeRepeat, pos)
	n.Event = event
	n.Count = cnt
	return n
}

func newOnRepsNode(event *ASTNode, rawLexeme string, pos Position) *ASTNode {
	n := newNode(NodeOnReps, pos)
	n.Event = event
	n.RepsLexeme = rawLexeme
	return n
}

// Debug rendering
// ===============

/*
String returns a debug, indented dump of this node and all its
descendants. Intended for tests and the CLI's "ast" subcommand - this is
not a pretty-printer of Alda source, only a developer-facing tree dump.
*/
func (n *ASTNode) String() string {
	var buf strings.Builder
	n.levelString(0, &buf)
	return buf.String()
}

func (n *ASTNode) levelString(indent int, buf *strings.Builder) {
	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))

	switch n.Type {
	case NodeNote:
		fmt.Fprintf(buf, "%s %c%s", n.Type, n.Letter, n.Accidentals)
	case NodeOctaveSet:
		fmt.Fprintf(buf, "%s %d", n.Type, n.Octave)
	case NodeNoteLen:
		fmt.Fprintf(buf, "%s %d dots=%d", n.Type, n.Denominator, n.Dots)
	case NodeNoteLenMs:
		fmt.Fprintf(buf, "%s %dms", n.Type, n.Ms)
	case NodeNoteLenS:
		fmt.Fprintf(buf, "%s %gs", n.Type, n.Seconds)
	case NodeVarRef, NodeMarker, NodeAtMarker, NodeLispSym:
		fmt.Fprintf(buf, "%s %s", n.Type, n.Name)
	case NodeLispNum:
		fmt.Fprintf(buf, "%s %g", n.Type, n.NumberValue)
	case NodeLispStr:
		fmt.Fprintf(buf, "%s %q", n.Type, n.StringValue)
	case NodePartDecl:
		fmt.Fprintf(buf, "%s %v alias=%q", n.Type, n.Names, n.Alias)
	case NodeVoice:
		fmt.Fprintf(buf, "%s %d", n.Type, n.VoiceNumber)
	case NodeRepeat:
		fmt.Fprintf(buf, "%s count=%d", n.Type, n.Count)
	default:
		buf.WriteString(string(n.Type))
	}
	buf.WriteString("\n")

	for _, child := range n.childLists() {
		for _, c := range siblings(child) {
			c.levelString(indent+1, buf)
		}
	}

	if n.Duration != nil {
		n.Duration.levelString(indent+1, buf)
	}
	if n.Event != nil {
		n.Event.levelString(indent+1, buf)
	}
}

/*
childLists returns the sibling-list heads this node owns, for traversal.
*/
func (n *ASTNode) childLists() []*ASTNode {
	return []*ASTNode{n.Children, n.Events, n.Notes, n.Comps, n.Elements, n.Voices}
}
