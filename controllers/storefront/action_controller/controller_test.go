package action_controller

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-storefront/cart"
)

func TestKindsListsEveryAction(t *testing.T) {
	t.Parallel()

	ctl := New(nil, nil, nil, cart.Opener{}, nil)
	require.ElementsMatch(t, []ActionKind{
		KindView,
		KindAddToCart,
		KindRemove,
		KindUpdateQuantity,
		KindPageChange,
	}, ctl.Kinds())

	for _, kind := range ctl.Kinds() {
		require.NotNil(t, ctl.handlers[kind], kind)
	}
}
