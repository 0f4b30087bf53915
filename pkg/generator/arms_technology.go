package generator

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"taxoscan/pkg/taxonomy"
)

func genIPv4(r *rand.Rand, _ taxonomy.Locale) string {
	return fmt.Sprintf("%d.%d.%d.%d", r.Intn(256), r.Intn(256), r.Intn(256), r.Intn(256))
}

func genIPv6(r *rand.Rand, _ taxonomy.Locale) string {
	groups := make([]any, 8)
	for i := range groups {
		groups[i] = r.Intn(65536)
	}
	return fmt.Sprintf("%04x:%04x:%04x:%04x:%04x:%04x:%04x:%04x", groups...)
}

// wellKnownPortList, registeredPortList and ephemeralPortList back the
// {60% well-known / 20% registered / 20% ephemeral} port distribution.
var wellKnownPortList = []int{22, 80, 443, 3306, 5432, 8080, 21, 25, 53, 110, 143, 993, 995}

func genPort(r *rand.Rand, _ taxonomy.Locale) string {
	switch weightedChoice(r, []float64{0.6, 0.2, 0.2}) {
	case 0:
		return fmt.Sprintf("%d", randChoice(r, wellKnownPortList))
	case 1:
		return fmt.Sprintf("%d", randDigitsRange(r, 1024, 49151))
	default:
		return fmt.Sprintf("%d", randDigitsRange(r, 49152, 65535))
	}
}

var hostLabels = []string{"api", "www", "mail", "cdn", "app", "db", "edge", "auth"}
var hostTLDs = []string{"example.com", "internal.test", "service.io", "corp.net"}

func genHostname(r *rand.Rand, _ taxonomy.Locale) string {
	return fmt.Sprintf("%s.%s", randChoice(r, hostLabels), randChoice(r, hostTLDs))
}

// genUUID draws a version-4 UUID from the generator's own seeded
// source via NewRandomFromReader, rather than uuid.New's global
// crypto/rand source, so output stays reproducible under a fixed seed.
func genUUID(r *rand.Rand, _ taxonomy.Locale) string {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return uuid.Nil.String()
	}
	return id.String()
}

var base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
var bech32Alphabet = "023456789acdefghjklmnpqrstuvwxyz"

func genBitcoinAddress(r *rand.Rand, _ taxonomy.Locale) string {
	if r.Intn(2) == 0 {
		prefix := randChoice(r, []string{"1", "3"})
		return prefix + randFrom(r, base58Alphabet, 25+r.Intn(10))
	}
	return "bc1" + randFrom(r, bech32Alphabet, 20+r.Intn(20))
}

func registerTechnologyArms(reg map[string]armFunc) {
	reg["technology.internet.ip_v4"] = genIPv4
	reg["technology.internet.ip_v6"] = genIPv6
	reg["technology.network.port"] = genPort
	reg["technology.network.hostname"] = genHostname
	reg["technology.identifier.uuid"] = genUUID
	reg["technology.crypto.bitcoin_address"] = genBitcoinAddress
}
