package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name. Every method takes
// and returns a google.protobuf.Struct holding the JSON shapes of package view.
const ServiceName = "catalog.v1.CatalogAdminService"

// CatalogAdminServer is implemented by Handler.
type CatalogAdminServer interface {
	CreateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ActivateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeactivateProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetClientPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewClientPrice(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryMethod func(CatalogAdminServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodDesc(name string, call unaryMethod) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogAdminServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(CatalogAdminServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogAdminServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc("CreateProduct", CatalogAdminServer.CreateProduct),
		methodDesc("UpdateProduct", CatalogAdminServer.UpdateProduct),
		methodDesc("ActivateProduct", CatalogAdminServer.ActivateProduct),
		methodDesc("DeactivateProduct", CatalogAdminServer.DeactivateProduct),
		methodDesc("DeleteProduct", CatalogAdminServer.DeleteProduct),
		methodDesc("SetClientPrice", CatalogAdminServer.SetClientPrice),
		methodDesc("GetProduct", CatalogAdminServer.GetProduct),
		methodDesc("ListProducts", CatalogAdminServer.ListProducts),
		methodDesc("PreviewClientPrice", CatalogAdminServer.PreviewClientPrice),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog_admin.proto",
}

func RegisterCatalogAdminServer(s grpc.ServiceRegistrar, srv CatalogAdminServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// Client calls CatalogAdminService methods with JSON-shaped values.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Call marshals in to a Struct, invokes method and decodes the reply into out.
// out may be nil.
func (c *Client) Call(ctx context.Context, method string, in, out interface{}, opts ...grpc.CallOption) error {
	req, err := toStruct(in)
	if err != nil {
		return err
	}
	reply := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, req, reply, opts...); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return fromStruct(reply, out)
}

// toStruct converts any JSON-serializable value into a Struct.
func toStruct(v interface{}) (*structpb.Struct, error) {
	if v == nil {
		return &structpb.Struct{}, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode struct: %w", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, s); err != nil {
		return nil, fmt.Errorf("encode struct: %w", err)
	}
	return s, nil
}

// fromStruct decodes a Struct into a JSON-tagged value.
func fromStruct(s *structpb.Struct, out interface{}) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	raw, err := protojson.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// decode reads a request Struct, reporting malformed input as InvalidArgument.
func decode(s *structpb.Struct, out interface{}) error {
	if err := fromStruct(s, out); err != nil {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return nil
}

// reply encodes a response value, reporting failures as Internal.
func reply(v interface{}) (*structpb.Struct, error) {
	s, err := toStruct(v)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return s, nil
}
