// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsondoc

package jsondoc

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// defaultExampleSeed keeps example payloads stable across repeated builds of
// unchanged sources. Override with Options.ExampleSeed.
const defaultExampleSeed uint64 = 1

// synthesizer produces one fake scalar value for a primitive kind.
type synthesizer func(faker *gofakeit.Faker) any

// synthesizers maps each primitive kind to its value synthesizer. Kinds
// missing from the table degrade to the generic unknown placeholder instead
// of failing.
var synthesizers = map[PrimitiveKind]synthesizer{
	KindString: func(faker *gofakeit.Faker) any {
		return faker.Word()
	},
	KindInteger: func(faker *gofakeit.Faker) any {
		return faker.Number(0, 10000)
	},
	KindFloat: func(faker *gofakeit.Faker) any {
		return faker.Float64Range(0, 1000)
	},
	KindBoolean: func(faker *gofakeit.Faker) any {
		return faker.Bool()
	},
	KindNull: func(_ *gofakeit.Faker) any {
		return nil
	},
	KindEmail: func(faker *gofakeit.Faker) any {
		return faker.Email()
	},
	KindURI: func(faker *gofakeit.Faker) any {
		return faker.URL()
	},
	KindISO8601: func(faker *gofakeit.Faker) any {
		return faker.Date().UTC().Format(time.RFC3339)
	},
	KindUUID4: func(faker *gofakeit.Faker) any {
		return faker.UUID()
	},
	KindMD5: func(faker *gofakeit.Faker) any {
		digest := md5.Sum([]byte(faker.Word()))
		return hex.EncodeToString(digest[:])
	},
	KindSHA1: func(faker *gofakeit.Faker) any {
		digest := sha1.Sum([]byte(faker.Word()))
		return hex.EncodeToString(digest[:])
	},
	KindSHA256: func(faker *gofakeit.Faker) any {
		digest := sha256.Sum256([]byte(faker.Word()))
		return hex.EncodeToString(digest[:])
	},
	KindUserName: func(faker *gofakeit.Faker) any {
		return faker.Username()
	},
}

// synthesizeValue dispatches one primitive kind to its synthesizer.
func synthesizeValue(faker *gofakeit.Faker, kind PrimitiveKind) (any, bool) {
	synth, ok := synthesizers[kind]
	if !ok {
		return nil, false
	}

	return synth(faker), true
}
