package quantity_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestQuantity(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Quantity Suite")
}
