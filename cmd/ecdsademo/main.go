// Command ecdsademo exercises the curve arithmetic and ECDSA layers from
// the command line: it derives a key pair, signs a digest with a supplied
// nonce and verifies the result. With -signatures it instead batch-verifies
// a JSON signature file and scans it for reused nonces.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/curvekit/ecdsa-weierstrass/internal/logger"
	"github.com/curvekit/ecdsa-weierstrass/pkg/ecdsa"
	"github.com/curvekit/ecdsa-weierstrass/pkg/weierstrass"
)

// Default literals so a bare run produces a reproducible key pair and
// signature. The nonce is fixed here for reproducibility only; real signers
// must use a fresh unpredictable nonce per signature.
const (
	demoPrivHex = "A0DC65FFCA799873CBEA0AC274015B9526505DAAAED385155425F7337704883E"
	demoNonce   = "28695618543805844332113829720373285210420739438570883203839696518176414791234"
	demoDigest  = "86032112319101611046176971828093669637772856272773459297323797145286374828050"
)

func main() {
	var (
		privHex   = flag.String("priv", demoPrivHex, "Private key scalar in hex")
		nonceStr  = flag.String("nonce", demoNonce, "Signing nonce (decimal or 0x-prefixed hex)")
		digestStr = flag.String("digest", demoDigest, "Digest to sign (decimal or 0x-prefixed hex)")
		sigFile   = flag.String("signatures", "", "Path to a JSON signature file to batch-verify and scan for nonce reuse")
		pubHex    = flag.String("public-key", "", "Public key in hex (compressed or uncompressed) for batch verification")
	)
	flag.Parse()

	log := logger.Logger()
	curve := weierstrass.Secp256k1()

	var err error
	if *sigFile != "" {
		err = runBatch(curve, *sigFile, *pubHex)
	} else {
		err = runDemo(curve, *privHex, *nonceStr, *digestStr)
	}
	if err != nil {
		log.Error().Err(err).Msg("ecdsademo failed")
		os.Exit(1)
	}
}

func runDemo(curve *weierstrass.Curve, privHex, nonceStr, digestStr string) error {
	log := logger.Logger()

	d, ok := new(big.Int).SetString(strings.TrimPrefix(privHex, "0x"), 16)
	if !ok {
		return fmt.Errorf("invalid private key %q", privHex)
	}
	k, err := parseScalar(nonceStr)
	if err != nil {
		return fmt.Errorf("invalid nonce: %w", err)
	}
	h, err := parseScalar(digestStr)
	if err != nil {
		return fmt.Errorf("invalid digest: %w", err)
	}

	key, err := ecdsa.DeriveKeyPair(d, curve)
	if err != nil {
		return fmt.Errorf("key derivation: %w", err)
	}
	compressed, err := ecdsa.SerializeCompressed(key.Public, curve)
	if err != nil {
		return err
	}
	uncompressed, err := ecdsa.SerializeUncompressed(key.Public, curve)
	if err != nil {
		return err
	}
	log.Info().
		Str("compressed", hex.EncodeToString(compressed)).
		Str("uncompressed", hex.EncodeToString(uncompressed)).
		Msg("derived public key")

	sig, err := ecdsa.Sign(h, key.D, k, curve)
	if err != nil {
		return fmt.Errorf("signing: %w", err)
	}
	log.Info().
		Str("r", sig.R.Text(16)).
		Str("s", sig.S.Text(16)).
		Msg("signature generated")

	ok2, err := ecdsa.Verify(h, key.Public, sig, curve)
	if err != nil {
		return fmt.Errorf("verification: %w", err)
	}
	if !ok2 {
		return fmt.Errorf("signature did not verify against its own key")
	}
	log.Info().Msg("signature verified")
	return nil
}

func runBatch(curve *weierstrass.Curve, path, pubHex string) error {
	log := logger.Logger()

	pub := weierstrass.Infinity()
	if pubHex != "" {
		raw, err := hex.DecodeString(strings.TrimPrefix(pubHex, "0x"))
		if err != nil {
			return fmt.Errorf("invalid public key hex: %w", err)
		}
		pub, err = ecdsa.ParsePublicKey(raw, curve)
		if err != nil {
			return err
		}
	}

	parser := &ecdsa.JSONParser{}
	records, err := parser.ParseSignatures(path, curve)
	if err != nil {
		return err
	}
	log.Info().Int("count", len(records)).Str("file", path).Msg("loaded signatures")

	if !pub.IsInfinity() {
		valid := 0
		for i, rec := range records {
			ok, err := ecdsa.Verify(rec.Z, pub, rec.Sig, curve)
			if err != nil {
				log.Warn().Int("index", i).Err(err).Msg("malformed signature")
				continue
			}
			if ok {
				valid++
			} else {
				log.Warn().Int("index", i).Msg("signature does not verify")
			}
		}
		log.Info().Int("valid", valid).Int("total", len(records)).Msg("batch verification done")
	}

	if result := ecdsa.FindNonceReuse(records, pub, curve); result != nil {
		log.Warn().
			Str("private_key", result.PrivateKey.Text(16)).
			Ints("pair", result.Pair[:]).
			Bool("verified", result.Verified).
			Msg("nonce reuse detected, private key recovered")
	} else {
		log.Info().Msg("no recoverable nonce reuse found")
	}
	return nil
}

// parseScalar accepts 0x-prefixed hex or decimal.
func parseScalar(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	out, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return out, nil
}
