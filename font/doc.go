// Package font defines the view of the host font editor that the nine-box
// engine depends on, and two implementations of it.
//
// The engine only talks to a Service:
//
//   - CurrentContext: the active font and master
//   - ResolveGlyph: character or glyph name to glyph, in that order: exact
//     name, uniXXXX/uXXXXX hex name, code point
//   - LayerWidth: advance width of a glyph in a master
//   - FontIdentity: a string that changes when the font is switched or edited
//   - SelectedGlyph: the live edit selection
//
// # Implementations
//
// Workspace opens TTF/OTF files the way an editor opens documents:
//
//	ws := font.NewWorkspace()
//	if _, err := ws.Open("NotoSansSC-Regular.otf"); err != nil {
//	    log.Fatal(err)
//	}
//	ws.Select("天")
//
// Memory holds fonts built in code, for tests and demos:
//
//	f := font.NewMemoryFont("Demo", "ABC天地", "a.sc")
//	svc := font.NewMemory(f)
//
// # Identity
//
// Fonts with a file are identified by path and modification time. Fonts
// without one are identified by a hash of family name, glyph count and
// sorted master IDs, so adding or removing a glyph yields a new identity.
package font
