package dotpath

import (
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/signadot/jdoc/ir"
)

func (n *Nav) GetBool(path string) (bool, error) {
	return get(n, path, (*ir.Object).GetBool)
}

func (n *Nav) GetBoolOr(path string, def bool) (bool, error) {
	return getOr(n, path, def, (*ir.Object).GetBoolOr)
}

func (n *Nav) OptBool(path string) (bool, bool, error) {
	return opt(n, path, (*ir.Object).OptBool)
}

func (n *Nav) GetInt32(path string) (int32, error) {
	return get(n, path, (*ir.Object).GetInt32)
}

func (n *Nav) GetInt32Or(path string, def int32) (int32, error) {
	return getOr(n, path, def, (*ir.Object).GetInt32Or)
}

func (n *Nav) OptInt32(path string) (int32, bool, error) {
	return opt(n, path, (*ir.Object).OptInt32)
}

func (n *Nav) GetInt64(path string) (int64, error) {
	return get(n, path, (*ir.Object).GetInt64)
}

func (n *Nav) GetInt64Or(path string, def int64) (int64, error) {
	return getOr(n, path, def, (*ir.Object).GetInt64Or)
}

func (n *Nav) OptInt64(path string) (int64, bool, error) {
	return opt(n, path, (*ir.Object).OptInt64)
}

func (n *Nav) GetFloat32(path string) (float32, error) {
	return get(n, path, (*ir.Object).GetFloat32)
}

func (n *Nav) GetFloat32Or(path string, def float32) (float32, error) {
	return getOr(n, path, def, (*ir.Object).GetFloat32Or)
}

func (n *Nav) OptFloat32(path string) (float32, bool, error) {
	return opt(n, path, (*ir.Object).OptFloat32)
}

func (n *Nav) GetFloat64(path string) (float64, error) {
	return get(n, path, (*ir.Object).GetFloat64)
}

func (n *Nav) GetFloat64Or(path string, def float64) (float64, error) {
	return getOr(n, path, def, (*ir.Object).GetFloat64Or)
}

func (n *Nav) OptFloat64(path string) (float64, bool, error) {
	return opt(n, path, (*ir.Object).OptFloat64)
}

func (n *Nav) GetBigInt(path string) (*big.Int, error) {
	return get(n, path, (*ir.Object).GetBigInt)
}

func (n *Nav) GetBigIntOr(path string, def *big.Int) (*big.Int, error) {
	return getOr(n, path, def, (*ir.Object).GetBigIntOr)
}

func (n *Nav) OptBigInt(path string) (*big.Int, bool, error) {
	return opt(n, path, (*ir.Object).OptBigInt)
}

func (n *Nav) GetDecimal(path string) (decimal.Decimal, error) {
	return get(n, path, (*ir.Object).GetDecimal)
}

func (n *Nav) GetDecimalOr(path string, def decimal.Decimal) (decimal.Decimal, error) {
	return getOr(n, path, def, (*ir.Object).GetDecimalOr)
}

func (n *Nav) OptDecimal(path string) (decimal.Decimal, bool, error) {
	return opt(n, path, (*ir.Object).OptDecimal)
}

func (n *Nav) GetString(path string) (string, error) {
	return get(n, path, (*ir.Object).GetString)
}

func (n *Nav) GetStringOr(path string, def string) (string, error) {
	return getOr(n, path, def, (*ir.Object).GetStringOr)
}

func (n *Nav) OptString(path string) (string, bool, error) {
	return opt(n, path, (*ir.Object).OptString)
}

func (n *Nav) GetObject(path string) (*ir.Object, error) {
	return get(n, path, (*ir.Object).GetObject)
}

func (n *Nav) GetObjectOr(path string, def *ir.Object) (*ir.Object, error) {
	return getOr(n, path, def, (*ir.Object).GetObjectOr)
}

func (n *Nav) OptObject(path string) (*ir.Object, bool, error) {
	return opt(n, path, (*ir.Object).OptObject)
}

func (n *Nav) GetList(path string) (*ir.List, error) {
	return get(n, path, (*ir.Object).GetList)
}

func (n *Nav) GetListOr(path string, def *ir.List) (*ir.List, error) {
	return getOr(n, path, def, (*ir.Object).GetListOr)
}

func (n *Nav) OptList(path string) (*ir.List, bool, error) {
	return opt(n, path, (*ir.Object).OptList)
}
