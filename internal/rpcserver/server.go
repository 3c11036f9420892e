// Package rpcserver exposes a kernel.Context over gRPC as sinepia.v1.Kernel,
// a single Submit RPC, with the service schema parsed from an in-memory
// string at startup rather than generated by protoc, and registered as a
// standing service rather than a scripted one-off.
package rpcserver

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/sinepia-lang/sinepia/internal/diagnostics"
	"github.com/sinepia-lang/sinepia/internal/fresh"
	"github.com/sinepia-lang/sinepia/internal/kernel"
	"github.com/sinepia-lang/sinepia/internal/surface"
	"github.com/sinepia-lang/sinepia/internal/term"
)

func newVar(name string) term.Variable { return term.NewVar(name) }

// session pairs a context with the fresh-name supply that built it. Each
// session owns both; there is no sharing contract between sessions, matching
// the kernel's single-threaded, no-cross-session-state model.
type session struct {
	ctx    *kernel.Context
	supply *fresh.Supply
}

// Server implements the sinepia.v1.Kernel/Submit RPC. A new session token is
// minted for the first request that arrives without one; every later
// request carrying that token reuses the same context and supply.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*session

	sd *desc.ServiceDescriptor
}

// New parses the Kernel service's proto schema and returns a ready Server.
func New() (*Server, error) {
	parser := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{
			protoFileName: schema,
		}),
	}
	fds, err := parser.ParseFiles(protoFileName)
	if err != nil {
		return nil, fmt.Errorf("parsing kernel service schema: %w", err)
	}
	sd := fds[0].FindService(serviceName)
	if sd == nil {
		return nil, fmt.Errorf("service %s not found in parsed schema", serviceName)
	}
	return &Server{sessions: make(map[string]*session), sd: sd}, nil
}

// ServiceDesc builds the grpc.ServiceDesc a Server registers itself under,
// hand-assembled from the parsed descriptor rather than generated code.
func (s *Server) ServiceDesc() *grpc.ServiceDesc {
	method := s.sd.FindMethodByName(methodName)
	return &grpc.ServiceDesc{
		ServiceName: serviceName,
		HandlerType: (*interface{})(nil),
		Metadata:    s.sd.GetFile().GetName(),
		Methods: []grpc.MethodDesc{
			{
				MethodName: methodName,
				Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					return srv.(*Server).handleSubmit(ctx, method, dec)
				},
			},
		},
	}
}

// Register registers s on grpcServer under the Kernel service descriptor.
func (s *Server) Register(grpcServer *grpc.Server) {
	grpcServer.RegisterService(s.ServiceDesc(), s)
}

func (s *Server) handleSubmit(_ context.Context, method *desc.MethodDescriptor, dec func(interface{}) error) (interface{}, error) {
	req := dynamic.NewMessage(method.GetInputType())
	if err := dec(req); err != nil {
		return nil, err
	}

	token, _ := req.GetFieldByName("session_token").(string)
	kind, _ := req.GetFieldByName("kind").(string)
	name, _ := req.GetFieldByName("name").(string)
	exprSrc, _ := req.GetFieldByName("expr").(string)

	sess, token := s.sessionFor(token)

	resp := dynamic.NewMessage(method.GetOutputType())
	resp.SetFieldByName("session_token", token)

	expr, err := surface.ParseExpr(exprSrc)
	if err != nil {
		resp.SetFieldByName("ok", false)
		resp.SetFieldByName("message", err.Error())
		return resp, nil
	}

	var opErr error
	switch kind {
	case "axiom":
		opErr = sess.ctx.AddAxiom(newVar(name), expr, sess.supply)
	case "theorem":
		opErr = sess.ctx.AddTheorem(newVar(name), expr, sess.supply)
	case "proof":
		_, _, opErr = sess.ctx.Discharge(newVar(name), expr, sess.supply)
	default:
		opErr = fmt.Errorf("unknown statement kind %q", kind)
	}

	if opErr != nil {
		resp.SetFieldByName("ok", false)
		resp.SetFieldByName("message", diagnostics.Format(opErr))
		return resp, nil
	}

	resp.SetFieldByName("ok", true)
	resp.SetFieldByName("message", "")
	if typ, ok := sess.ctx.LookupType(newVar(name)); ok {
		resp.SetFieldByName("inferred_type", typ.String())
	}
	return resp, nil
}

func (s *Server) sessionFor(token string) (*session, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != "" {
		if sess, ok := s.sessions[token]; ok {
			return sess, token
		}
	}
	token = uuid.NewString()
	sess := &session{ctx: kernel.NewContext(), supply: fresh.NewSupply()}
	s.sessions[token] = sess
	return sess, token
}
