// Package testfixture provides the canonical "dog schema" used
// throughout the GraphQL specification's own examples, loaded from SDL
// text through the gqlparser adapter so every test exercises the same
// parsing path as cmd/gqlvalidate.
package testfixture

import (
	gqlast "github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	adapter "github.com/shyptr/gqlvalidate/adapter/gqlparser"
	"github.com/shyptr/gqlvalidate/ast"
	"github.com/shyptr/gqlvalidate/schema"
)

// DogSchemaSDL is the canonical schema from the specification's own
// validation examples: interfaces Sentient/Pet/Canine, object types
// Dog/Cat/Human/Alien, CatOrDog and HumanOrAlien unions, and the
// Query/Mutation/Subscription roots used by the test suite.
const DogSchemaSDL = `
interface Sentient {
  name: String!
}

interface Pet {
  name: String!
}

interface Canine {
  name: String!
  barkVolume: Int
}

enum DogCommand {
  SIT
  DOWN
  HEEL
}

type Dog implements Pet & Canine {
  name: String!
  nickname: String
  barkVolume: Int
  doesKnowCommand(dogCommand: DogCommand!): Boolean!
  isHousetrained(atOtherHomes: Boolean = true): Boolean!
  owner: Human
}

type Cat {
  name: String!
  nickname: String
  meowVolume: Int
  furColor: FurColor
}

enum FurColor {
  BROWN
  BLACK
  WHITE
}

union CatOrDog = Cat | Dog

type Human implements Sentient {
  name: String!
  pets: [Pet]
}

type Alien implements Sentient {
  name: String!
  homePlanet: String
}

union HumanOrAlien = Human | Alien

input ComplexInput {
  requiredField: Boolean!
  intField: Int
  stringField: String
  booleanField: Boolean
  stringListField: [String]
}

type Query {
  dog(id: ID): Dog
  cat: Cat
  human: Human
  pet: Pet
  catOrDog: CatOrDog
  sentient: Sentient
  findDog(complex: ComplexInput): Dog
  booleanArgField(booleanArg: Boolean): Boolean
  floatArgField(floatArg: Float): Float
  intArgField(intArg: Int): Int
  nonNullBooleanArgField(nonNullBooleanArg: Boolean!): Boolean!
}

type Mutation {
  mutateDog: Dog
}

type Subscription {
  disallowedSecondRootField: Dog
  newMessage: Dog
}
`

// Load parses DogSchemaSDL and returns a schema.Context built from it.
func Load() (*schema.Context, error) {
	return LoadSDL(DogSchemaSDL)
}

// LoadSDL parses arbitrary SDL text into a schema.Context, for tests
// that need a variant schema.
func LoadSDL(sdl string) (*schema.Context, error) {
	doc, err := parser.ParseSchema(&gqlast.Source{Name: "fixture.graphql", Input: sdl})
	if err != nil {
		return nil, err
	}
	return schema.Build(adapter.SchemaDocument(doc))
}

// LoadQuery parses executable document text into an ast.Document,
// using the same adapter path as cmd/gqlvalidate.
func LoadQuery(src string) (*ast.Document, error) {
	doc, err := parser.ParseQuery(&gqlast.Source{Name: "fixture.graphql", Input: src})
	if err != nil {
		return nil, err
	}
	return adapter.Document(doc), nil
}

// MustLoad is Load, panicking on error; for use in test package
// globals/helpers, never in library code.
func MustLoad() *schema.Context {
	sc, err := Load()
	if err != nil {
		panic(err)
	}
	return sc
}
