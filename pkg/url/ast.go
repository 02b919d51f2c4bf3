package url

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

var zeroPos = ast.Position{}

// ToNode converts u to an AST ObjectNode, the structured representation
// shape-core-aware tooling (schema validators, diff renderers) operates
// on rather than the raw string form.
func ToNode(u *URL) ast.SchemaNode {
	props := map[string]ast.SchemaNode{
		"scheme": ast.NewLiteralNode(u.Scheme(), zeroPos),
	}
	if u.Username() != "" {
		props["username"] = ast.NewLiteralNode(u.Username(), zeroPos)
	}
	if u.Password() != "" {
		props["password"] = ast.NewLiteralNode(u.Password(), zeroPos)
	}
	if h := u.Hostname(); h != "" {
		props["hostname"] = ast.NewLiteralNode(h, zeroPos)
	}
	if port, ok := u.Port(); ok {
		props["port"] = ast.NewLiteralNode(int64(port), zeroPos)
	}
	if u.CannotBeABaseURL() {
		props["path"] = ast.NewLiteralNode(u.Pathname(), zeroPos)
	} else {
		props["path"] = pathSegmentsToNode(u.PathSegments())
	}
	if u.HasQuery() {
		props["query"] = ast.NewLiteralNode(u.RawQuery(), zeroPos)
	}
	if u.HasFragment() {
		props["fragment"] = ast.NewLiteralNode(u.RawFragment(), zeroPos)
	}
	return ast.NewObjectNode(props, zeroPos)
}

func pathSegmentsToNode(segments []string) ast.SchemaNode {
	elements := make([]ast.SchemaNode, len(segments))
	for i, s := range segments {
		elements[i] = ast.NewLiteralNode(s, zeroPos)
	}
	return ast.NewArrayDataNode(elements, zeroPos)
}

// NodeToURL converts an AST ObjectNode produced by ToNode back into a
// serialised URL string, which is then parsed through the normal strict
// path so every NodeToURL result carries the same normalisation
// guarantees as any other parsed URL.
func NodeToURL(node ast.SchemaNode) (*URL, error) {
	obj, ok := node.(*ast.ObjectNode)
	if !ok {
		return nil, fmt.Errorf("url: NodeToURL: expected ObjectNode, got %T", node)
	}
	props := obj.Properties()

	scheme, err := nodeLiteralString(props, "scheme")
	if err != nil {
		return nil, err
	}

	path := props["path"]
	if _, opaque := path.(*ast.LiteralNode); opaque {
		// A literal (rather than array) path means ToNode built this from
		// a cannot-be-a-base-URL record: no authority, just "scheme:path".
		s := scheme + ":" + literalString(path)
		if query, ok := props["query"]; ok {
			s += "?" + literalString(query)
		}
		if fragment, ok := props["fragment"]; ok {
			s += "#" + literalString(fragment)
		}
		return Parse(s)
	}

	s := scheme + "://"
	if user, ok := props["username"]; ok {
		s += literalString(user)
		if pass, ok := props["password"]; ok {
			s += ":" + literalString(pass)
		}
		s += "@"
	}
	if host, ok := props["hostname"]; ok {
		s += literalString(host)
	}
	if port, ok := props["port"]; ok {
		if lit, ok := port.(*ast.LiteralNode); ok {
			s += fmt.Sprintf(":%v", lit.Value())
		}
	}
	if arr, ok := path.(*ast.ArrayDataNode); ok {
		for _, elem := range arr.Elements() {
			s += "/" + literalString(elem)
		}
	}
	if query, ok := props["query"]; ok {
		s += "?" + literalString(query)
	}
	if fragment, ok := props["fragment"]; ok {
		s += "#" + literalString(fragment)
	}

	return Parse(s)
}

func nodeLiteralString(props map[string]ast.SchemaNode, key string) (string, error) {
	node, ok := props[key]
	if !ok {
		return "", fmt.Errorf("url: NodeToURL: missing %q", key)
	}
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return "", fmt.Errorf("url: NodeToURL: %q is not a literal", key)
	}
	s, ok := lit.Value().(string)
	if !ok {
		return "", fmt.Errorf("url: NodeToURL: %q is not a string", key)
	}
	return s, nil
}

func literalString(node ast.SchemaNode) string {
	lit, ok := node.(*ast.LiteralNode)
	if !ok {
		return ""
	}
	s, _ := lit.Value().(string)
	return s
}
