package xsdxml

import (
	"github.com/claudiobogossian/terralib5-sub033/pkg/xmlcursor"
	"github.com/claudiobogossian/terralib5-sub033/schema"
)

// ReadSchema reads a <schema> element from cur.
func ReadSchema(cur xmlcursor.Cursor, opts ...Option) (*schema.Schema, error) {
	return NewDecoder(cur, opts...).ReadSchema()
}

// ReadElement reads an <element> from cur.
func ReadElement(cur xmlcursor.Cursor, opts ...Option) (*schema.Element, error) {
	return NewDecoder(cur, opts...).ReadElement()
}

// ReadAttribute reads an <attribute> from cur.
func ReadAttribute(cur xmlcursor.Cursor, opts ...Option) (*schema.Attribute, error) {
	return NewDecoder(cur, opts...).ReadAttribute()
}

// ReadAttributeGroup reads an <attributeGroup> from cur.
func ReadAttributeGroup(cur xmlcursor.Cursor, opts ...Option) (*schema.AttributeGroup, error) {
	return NewDecoder(cur, opts...).ReadAttributeGroup()
}

// ReadComplexType reads a <complexType> from cur.
func ReadComplexType(cur xmlcursor.Cursor, opts ...Option) (*schema.ComplexType, error) {
	return NewDecoder(cur, opts...).ReadComplexType()
}

// ReadSimpleType reads a <simpleType> from cur.
func ReadSimpleType(cur xmlcursor.Cursor, opts ...Option) (*schema.SimpleType, error) {
	return NewDecoder(cur, opts...).ReadSimpleType()
}

// ReadGroup reads a <group> from cur.
func ReadGroup(cur xmlcursor.Cursor, opts ...Option) (*schema.Group, error) {
	return NewDecoder(cur, opts...).ReadGroup()
}

// ReadSequence reads a <sequence> from cur.
func ReadSequence(cur xmlcursor.Cursor, opts ...Option) (*schema.Sequence, error) {
	return NewDecoder(cur, opts...).ReadSequence()
}

// ReadChoice reads a <choice> from cur.
func ReadChoice(cur xmlcursor.Cursor, opts ...Option) (*schema.Choice, error) {
	return NewDecoder(cur, opts...).ReadChoice()
}

// ReadAll reads an <all> from cur.
func ReadAll(cur xmlcursor.Cursor, opts ...Option) (*schema.All, error) {
	return NewDecoder(cur, opts...).ReadAll()
}

// ReadAny reads an <any> from cur.
func ReadAny(cur xmlcursor.Cursor, opts ...Option) (*schema.Any, error) {
	return NewDecoder(cur, opts...).ReadAny()
}

// ReadAnyAttribute reads an <anyAttribute> from cur.
func ReadAnyAttribute(cur xmlcursor.Cursor, opts ...Option) (*schema.AnyAttribute, error) {
	return NewDecoder(cur, opts...).ReadAnyAttribute()
}

// ReadSimpleContent reads a <simpleContent> from cur.
func ReadSimpleContent(cur xmlcursor.Cursor, opts ...Option) (*schema.SimpleContent, error) {
	return NewDecoder(cur, opts...).ReadSimpleContent()
}

// ReadComplexContent reads a <complexContent> from cur.
func ReadComplexContent(cur xmlcursor.Cursor, opts ...Option) (*schema.ComplexContent, error) {
	return NewDecoder(cur, opts...).ReadComplexContent()
}

// ReadExtension reads an <extension> from cur.
func ReadExtension(cur xmlcursor.Cursor, opts ...Option) (*schema.Extension, error) {
	return NewDecoder(cur, opts...).ReadExtension()
}

// ReadRestrictionSimpleContent reads the <restriction> of a simpleContent
// from cur.
func ReadRestrictionSimpleContent(cur xmlcursor.Cursor, opts ...Option) (*schema.RestrictionSimpleContent, error) {
	return NewDecoder(cur, opts...).ReadRestrictionSimpleContent()
}

// ReadRestrictionComplexContent reads the <restriction> of a complexContent
// from cur.
func ReadRestrictionComplexContent(cur xmlcursor.Cursor, opts ...Option) (*schema.RestrictionComplexContent, error) {
	return NewDecoder(cur, opts...).ReadRestrictionComplexContent()
}

// ReadRestrictionSimpleType reads the <restriction> of a simpleType from
// cur.
func ReadRestrictionSimpleType(cur xmlcursor.Cursor, opts ...Option) (*schema.RestrictionSimpleType, error) {
	return NewDecoder(cur, opts...).ReadRestrictionSimpleType()
}

// ReadFacet reads a facet element from cur.
func ReadFacet(cur xmlcursor.Cursor, opts ...Option) (schema.Facet, error) {
	return NewDecoder(cur, opts...).ReadFacet()
}

// ReadList reads a <list> from cur.
func ReadList(cur xmlcursor.Cursor, opts ...Option) (*schema.List, error) {
	return NewDecoder(cur, opts...).ReadList()
}

// ReadUnion reads a <union> from cur.
func ReadUnion(cur xmlcursor.Cursor, opts ...Option) (*schema.Union, error) {
	return NewDecoder(cur, opts...).ReadUnion()
}

// ReadKey reads a <key> from cur.
func ReadKey(cur xmlcursor.Cursor, opts ...Option) (*schema.IdentityConstraint, error) {
	return NewDecoder(cur, opts...).ReadKey()
}

// ReadKeyRef reads a <keyref> from cur.
func ReadKeyRef(cur xmlcursor.Cursor, opts ...Option) (*schema.IdentityConstraint, error) {
	return NewDecoder(cur, opts...).ReadKeyRef()
}

// ReadUnique reads a <unique> from cur.
func ReadUnique(cur xmlcursor.Cursor, opts ...Option) (*schema.IdentityConstraint, error) {
	return NewDecoder(cur, opts...).ReadUnique()
}

// ReadSelector reads a <selector> from cur.
func ReadSelector(cur xmlcursor.Cursor, opts ...Option) (*schema.Selector, error) {
	return NewDecoder(cur, opts...).ReadSelector()
}

// ReadField reads a <field> from cur.
func ReadField(cur xmlcursor.Cursor, opts ...Option) (*schema.Field, error) {
	return NewDecoder(cur, opts...).ReadField()
}

// ReadInclude reads an <include> from cur.
func ReadInclude(cur xmlcursor.Cursor, opts ...Option) (*schema.Include, error) {
	return NewDecoder(cur, opts...).ReadInclude()
}

// ReadImport reads an <import> from cur.
func ReadImport(cur xmlcursor.Cursor, opts ...Option) (*schema.Import, error) {
	return NewDecoder(cur, opts...).ReadImport()
}

// ReadRedefine reads a <redefine> from cur.
func ReadRedefine(cur xmlcursor.Cursor, opts ...Option) (*schema.Redefine, error) {
	return NewDecoder(cur, opts...).ReadRedefine()
}

// ReadNotation reads a <notation> from cur.
func ReadNotation(cur xmlcursor.Cursor, opts ...Option) (*schema.Notation, error) {
	return NewDecoder(cur, opts...).ReadNotation()
}

// ReadAnnotation reads an <annotation> from cur.
func ReadAnnotation(cur xmlcursor.Cursor, opts ...Option) (*schema.Annotation, error) {
	return NewDecoder(cur, opts...).ReadAnnotation()
}
