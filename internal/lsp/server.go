// Package lsp implements a language server for palette files: diagnostics,
// document colors, hover with Munsell notation, references and formatting.
package lsp

import (
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/jsvensson/munsell/internal/color"
	"github.com/jsvensson/munsell/internal/parser"
)

const serverName = "munsell-lsp"

// Converter resolves munsell() calls and converts colors for hover.
type Converter interface {
	parser.Resolver
	ColorToMunsell(color.Color) (color.Spec, error)
}

type Server struct {
	handler protocol.Handler
	docs    *DocumentStore
	conv    Converter
	version string
	log     commonlog.Logger
}

// NewServer returns a server. conv may be nil, in which case munsell()
// calls are reported as errors and hover shows no notation.
func NewServer(version string, conv Converter) *Server {
	s := &Server{
		docs:    NewDocumentStore(),
		conv:    conv,
		version: version,
		log:     commonlog.GetLogger("munsell.lsp"),
	}

	s.handler = protocol.Handler{
		Initialize:                    s.initialize,
		Initialized:                   s.initialized,
		Shutdown:                      s.shutdown,
		SetTrace:                      s.setTrace,
		TextDocumentDidOpen:           s.textDocumentDidOpen,
		TextDocumentDidChange:         s.textDocumentDidChange,
		TextDocumentDidClose:          s.textDocumentDidClose,
		TextDocumentHover:             s.textDocumentHover,
		TextDocumentColor:             s.textDocumentColor,
		TextDocumentColorPresentation: s.textDocumentColorPresentation,
		TextDocumentDefinition:        s.textDocumentDefinition,
		TextDocumentCompletion:        s.textDocumentCompletion,
		TextDocumentFormatting:        s.textDocumentFormatting,
	}
	return s
}

// Run serves over stdio until the client disconnects.
func (s *Server) Run() error {
	srv := server.NewServer(&s.handler, serverName, false)
	return srv.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	syncKind := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{".", "="},
	}

	if params.ClientInfo != nil {
		s.log.Infof("client %s connected", params.ClientInfo.Name)
	}
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	for _, change := range params.ContentChanges {
		if c, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.update(ctx, params.TextDocument.URI, c.Text)
		}
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.Close(string(params.TextDocument.URI))
	// Clear the diagnostics of the closed document.
	s.publish(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// update analyzes new document content, stores it and publishes its
// diagnostics.
func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, content string) {
	result := s.analyze(string(uri), content)
	s.docs.Set(string(uri), content, result)
	s.log.Debugf("%s: %d colors, %d diagnostics", uri, len(result.Colors), len(result.Diagnostics))
	s.publish(ctx, uri, result.Diagnostics)
}

func (s *Server) analyze(uri, content string) *AnalysisResult {
	var r parser.Resolver
	if s.conv != nil {
		r = s.conv
	}
	return Analyze(uri, content, r)
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri, diags []protocol.Diagnostic) {
	if ctx == nil {
		return
	}
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
}
