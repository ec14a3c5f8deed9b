package autodiff

// Kind identifies the operator a node applies.
//
// The set is closed: forward and backward dispatch with an exhaustive
// switch over Kind, so adding an operator means adding a constant here
// and a case in both passes.
type Kind uint8

// Supported node kinds.
const (
	KindLeaf    Kind = iota // Variable or Parameter, no inputs
	KindAdd                 // a + b
	KindSub                 // a - b
	KindMul                 // a * b (elementwise)
	KindDiv                 // a / b (elementwise)
	KindMatMul              // a @ b (2D or batched 3D)
	KindReLU                // max(0, x)
	KindSigmoid             // 1 / (1 + exp(-x))
)

// String returns a human-readable operator name.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindAdd:
		return "add"
	case KindSub:
		return "sub"
	case KindMul:
		return "mul"
	case KindDiv:
		return "div"
	case KindMatMul:
		return "matmul"
	case KindReLU:
		return "relu"
	case KindSigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// Arity returns the number of inputs a node of this kind takes.
func (k Kind) Arity() int {
	switch k {
	case KindLeaf:
		return 0
	case KindReLU, KindSigmoid:
		return 1
	case KindAdd, KindSub, KindMul, KindDiv, KindMatMul:
		return 2
	default:
		return -1
	}
}
