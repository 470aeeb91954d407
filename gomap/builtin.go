package gomap

import (
	"fmt"
	"strconv"

	"github.com/bmsexpr/bms/ir"

	"github.com/google/uuid"
)

func init() {
	Register[bool](CodecFuncs[bool]{To: boolToNode, From: boolFromNode})
	Register[int](CodecFuncs[int]{To: intToNode, From: intFromNode})
	Register[string](CodecFuncs[string]{To: ir.NewString, From: stringFromNode})
	Register[uuid.UUID](CodecFuncs[uuid.UUID]{To: uuidToNode, From: uuidFromNode})
}

func tokenValue(n *ir.Node, expected string) (string, error) {
	if !n.IsToken() {
		return "", &TypeError{Expected: expected + " token", Actual: n.Type().String()}
	}
	return n.Value(), nil
}

func boolToNode(v bool) *ir.Node {
	return ir.NewToken(strconv.FormatBool(v))
}

func boolFromNode(n *ir.Node) (bool, error) {
	v, err := tokenValue(n, "bool")
	if err != nil {
		return false, err
	}
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &TypeError{Expected: "bool", Message: fmt.Sprintf("%q is neither true nor false", v)}
}

func intToNode(v int) *ir.Node {
	return ir.NewToken(strconv.Itoa(v))
}

func intFromNode(n *ir.Node) (int, error) {
	v, err := tokenValue(n, "int")
	if err != nil {
		return 0, err
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, &TypeError{Expected: "int", Message: fmt.Sprintf("cannot convert %q to int", v), Err: err}
	}
	return i, nil
}

func stringFromNode(n *ir.Node) (string, error) {
	if !n.Type().IsAtom() {
		return "", &TypeError{Expected: "String", Actual: n.Type().String()}
	}
	return n.Value(), nil
}

func uuidToNode(u uuid.UUID) *ir.Node {
	return ir.NewToken("{" + u.String() + "}")
}

func uuidFromNode(n *ir.Node) (uuid.UUID, error) {
	v, err := tokenValue(n, "uuid")
	if err != nil {
		return uuid.Nil, err
	}
	u, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, &TypeError{Expected: "uuid", Message: fmt.Sprintf("cannot convert %q to uuid", v), Err: err}
	}
	return u, nil
}
