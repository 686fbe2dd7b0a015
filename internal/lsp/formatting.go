package lsp

import (
	"encoding/json"
	"fmt"
	"strings"
)

func (s *Server) handleFormatting(msg *JSONRPCMessage) error {
	var params DocumentFormattingParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: CodeInvalidParams, Message: err.Error()})
		return err
	}

	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return s.failRequest(msg, fmt.Errorf("document not open: %s", params.TextDocument.URI))
	}

	formatted, err := s.format(doc.Content, params.Options)
	if err != nil {
		return s.failRequest(msg, err)
	}

	edits := []TextEdit{}
	if formatted != doc.Content {
		edits = append(edits, TextEdit{
			Range:   Range{End: doc.EndPosition()},
			NewText: formatted,
		})
	}
	s.sendResponse(msg.ID, edits, nil)
	return nil
}

// handleRangeFormatting formats the selected text as a standalone query. A
// selection that does not end in a newline is replaced without one.
func (s *Server) handleRangeFormatting(msg *JSONRPCMessage) error {
	var params DocumentRangeFormattingParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		s.sendResponse(msg.ID, nil, &JSONRPCError{Code: CodeInvalidParams, Message: err.Error()})
		return err
	}

	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return s.failRequest(msg, fmt.Errorf("document not open: %s", params.TextDocument.URI))
	}

	start := doc.PositionToOffset(params.Range.Start)
	end := doc.PositionToOffset(params.Range.End)
	edits := []TextEdit{}
	if start >= end || strings.TrimSpace(doc.Content[start:end]) == "" {
		s.sendResponse(msg.ID, edits, nil)
		return nil
	}
	text := doc.Content[start:end]

	formatted, err := s.format(text, params.Options)
	if err != nil {
		return s.failRequest(msg, err)
	}
	if !strings.HasSuffix(text, "\n") {
		formatted = strings.TrimRight(formatted, "\n")
	}

	if formatted != text {
		edits = append(edits, TextEdit{
			Range: Range{
				Start: doc.OffsetToPosition(start),
				End:   doc.OffsetToPosition(end),
			},
			NewText: formatted,
		})
	}
	s.sendResponse(msg.ID, edits, nil)
	return nil
}

// format applies the server settings with the editor's indentation.
func (s *Server) format(src string, opts FormattingOptions) (string, error) {
	f := s.formatting
	if opts.TabSize > 0 {
		f.Indent = opts.TabSize
		f.Tab = !opts.InsertSpaces
	}

	fm, err := f.Formatter(s.logger)
	if err != nil {
		return "", err
	}
	return fm.Format(src), nil
}

func (s *Server) failRequest(msg *JSONRPCMessage, err error) error {
	s.sendResponse(msg.ID, nil, &JSONRPCError{Code: CodeRequestFailed, Message: err.Error()})
	s.sendNotification("window/showMessage", &ShowMessageParams{
		Type:    MessageTypeError,
		Message: "sqlfmt: " + err.Error(),
	})
	return err
}
