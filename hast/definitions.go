package hast

const (
	boolean               = kindBoolean
	overloadedBoolean     = kindOverloadedBoolean
	booleanish            = kindBooleanish
	number                = kindNumber
	spaceSeparated        = kindSpaceSeparated
	commaSeparated        = kindCommaSeparated
	commaOrSpaceSeparated = kindCommaOrSpaceSeparated
)

var xmlDefinitions = []definition{
	{"xmlBase", "xml:base", 0},
	{"xmlLang", "xml:lang", 0},
	{"xmlSpace", "xml:space", 0},
}

var xlinkDefinitions = []definition{
	{"xLinkActuate", "xlink:actuate", 0},
	{"xLinkArcRole", "xlink:arcrole", 0},
	{"xLinkHref", "xlink:href", 0},
	{"xLinkRole", "xlink:role", 0},
	{"xLinkShow", "xlink:show", 0},
	{"xLinkTitle", "xlink:title", 0},
	{"xLinkType", "xlink:type", 0},
}

var xmlnsDefinitions = []definition{
	{"xmlns", "xmlns", 0},
	{"xmlnsXLink", "xmlns:xlink", 0},
}

var htmlDefinitions = []definition{
	{"abbr", "", 0},
	{"accept", "", commaSeparated},
	{"acceptCharset", "accept-charset", spaceSeparated},
	{"accessKey", "", spaceSeparated},
	{"action", "", 0},
	{"allow", "", 0},
	{"allowFullScreen", "", boolean},
	{"alt", "", 0},
	{"as", "", 0},
	{"async", "", boolean},
	{"autoCapitalize", "", 0},
	{"autoComplete", "", spaceSeparated},
	{"autoFocus", "", boolean},
	{"autoPlay", "", boolean},
	{"blocking", "", spaceSeparated},
	{"capture", "", 0},
	{"charSet", "", 0},
	{"checked", "", boolean},
	{"cite", "", 0},
	{"className", "class", spaceSeparated},
	{"cols", "", number},
	{"colSpan", "", 0},
	{"content", "", 0},
	{"contentEditable", "", booleanish},
	{"controls", "", boolean},
	{"controlsList", "", spaceSeparated},
	{"coords", "", number | commaSeparated},
	{"crossOrigin", "", 0},
	{"data", "", 0},
	{"dateTime", "", 0},
	{"decoding", "", 0},
	{"default", "", boolean},
	{"defer", "", boolean},
	{"dir", "", 0},
	{"dirName", "", 0},
	{"disabled", "", boolean},
	{"download", "", overloadedBoolean},
	{"draggable", "", booleanish},
	{"encType", "", 0},
	{"enterKeyHint", "", 0},
	{"fetchPriority", "", 0},
	{"form", "", 0},
	{"formAction", "", 0},
	{"formEncType", "", 0},
	{"formMethod", "", 0},
	{"formNoValidate", "", boolean},
	{"formTarget", "", 0},
	{"headers", "", spaceSeparated},
	{"height", "", number},
	{"hidden", "", overloadedBoolean},
	{"high", "", number},
	{"href", "", 0},
	{"hrefLang", "", 0},
	{"htmlFor", "for", spaceSeparated},
	{"httpEquiv", "http-equiv", spaceSeparated},
	{"id", "", 0},
	{"imageSizes", "", 0},
	{"imageSrcSet", "", 0},
	{"inert", "", boolean},
	{"inputMode", "", 0},
	{"integrity", "", 0},
	{"is", "", 0},
	{"isMap", "", boolean},
	{"itemId", "", 0},
	{"itemProp", "", spaceSeparated},
	{"itemRef", "", spaceSeparated},
	{"itemScope", "", boolean},
	{"itemType", "", spaceSeparated},
	{"kind", "", 0},
	{"label", "", 0},
	{"lang", "", 0},
	{"language", "", 0},
	{"list", "", 0},
	{"loading", "", 0},
	{"loop", "", boolean},
	{"low", "", number},
	{"manifest", "", 0},
	{"max", "", 0},
	{"maxLength", "", number},
	{"media", "", 0},
	{"method", "", 0},
	{"min", "", 0},
	{"minLength", "", number},
	{"multiple", "", boolean},
	{"muted", "", boolean},
	{"name", "", 0},
	{"nonce", "", 0},
	{"noModule", "", boolean},
	{"noValidate", "", boolean},
	{"open", "", boolean},
	{"optimum", "", number},
	{"pattern", "", 0},
	{"ping", "", spaceSeparated},
	{"placeholder", "", 0},
	{"playsInline", "", boolean},
	{"popover", "", 0},
	{"poster", "", 0},
	{"preload", "", 0},
	{"readOnly", "", boolean},
	{"referrerPolicy", "", 0},
	{"rel", "", spaceSeparated},
	{"required", "", boolean},
	{"reversed", "", boolean},
	{"role", "", 0},
	{"rows", "", number},
	{"rowSpan", "", number},
	{"sandbox", "", spaceSeparated},
	{"scope", "", 0},
	{"scoped", "", boolean},
	{"seamless", "", boolean},
	{"selected", "", boolean},
	{"shape", "", 0},
	{"size", "", number},
	{"sizes", "", 0},
	{"slot", "", 0},
	{"span", "", number},
	{"spellCheck", "", booleanish},
	{"src", "", 0},
	{"srcDoc", "", 0},
	{"srcLang", "", 0},
	{"srcSet", "", 0},
	{"start", "", number},
	{"step", "", 0},
	{"style", "", 0},
	{"tabIndex", "", number},
	{"target", "", 0},
	{"title", "", 0},
	{"translate", "", 0},
	{"type", "", 0},
	{"typeMustMatch", "", boolean},
	{"useMap", "", 0},
	{"value", "", booleanish},
	{"width", "", number},
	{"wrap", "", 0},
}

// SVG attributes keep their case; only hyphenated ones need an explicit
// attribute name.
var svgDefinitions = []definition{
	{"about", "", commaOrSpaceSeparated},
	{"accentHeight", "accent-height", number},
	{"alignmentBaseline", "alignment-baseline", 0},
	{"amplitude", "", number},
	{"arabicForm", "arabic-form", 0},
	{"ascent", "", number},
	{"attributeName", "", 0},
	{"attributeType", "", 0},
	{"azimuth", "", number},
	{"baseFrequency", "", 0},
	{"baselineShift", "baseline-shift", 0},
	{"bbox", "", 0},
	{"begin", "", 0},
	{"bias", "", number},
	{"by", "", 0},
	{"calcMode", "", 0},
	{"capHeight", "cap-height", number},
	{"className", "class", spaceSeparated},
	{"clip", "", 0},
	{"clipPath", "clip-path", 0},
	{"clipPathUnits", "", 0},
	{"clipRule", "clip-rule", 0},
	{"color", "", 0},
	{"colorInterpolation", "color-interpolation", 0},
	{"colorInterpolationFilters", "color-interpolation-filters", 0},
	{"colorProfile", "color-profile", 0},
	{"colorRendering", "color-rendering", 0},
	{"content", "", 0},
	{"crossOrigin", "crossorigin", 0},
	{"cursor", "", 0},
	{"cx", "", 0},
	{"cy", "", 0},
	{"d", "", 0},
	{"dataType", "datatype", 0},
	{"descent", "", number},
	{"diffuseConstant", "", number},
	{"direction", "", 0},
	{"display", "", 0},
	{"divisor", "", number},
	{"dominantBaseline", "dominant-baseline", 0},
	{"download", "", boolean},
	{"dur", "", 0},
	{"dx", "", 0},
	{"dy", "", 0},
	{"edgeMode", "", 0},
	{"elevation", "", number},
	{"enableBackground", "enable-background", 0},
	{"end", "", 0},
	{"exponent", "", number},
	{"externalResourcesRequired", "", 0},
	{"fill", "", 0},
	{"fillOpacity", "fill-opacity", number},
	{"fillRule", "fill-rule", 0},
	{"filter", "", 0},
	{"filterRes", "", 0},
	{"filterUnits", "", 0},
	{"floodColor", "flood-color", 0},
	{"floodOpacity", "flood-opacity", 0},
	{"focusable", "", 0},
	{"fontFamily", "font-family", 0},
	{"fontSize", "font-size", 0},
	{"fontSizeAdjust", "font-size-adjust", 0},
	{"fontStretch", "font-stretch", 0},
	{"fontStyle", "font-style", 0},
	{"fontVariant", "font-variant", 0},
	{"fontWeight", "font-weight", 0},
	{"format", "", 0},
	{"fr", "", 0},
	{"from", "", 0},
	{"fx", "", 0},
	{"fy", "", 0},
	{"g1", "", commaSeparated},
	{"g2", "", commaSeparated},
	{"glyphName", "glyph-name", commaSeparated},
	{"glyphOrientationHorizontal", "glyph-orientation-horizontal", 0},
	{"glyphOrientationVertical", "glyph-orientation-vertical", 0},
	{"glyphRef", "", 0},
	{"gradientTransform", "", 0},
	{"gradientUnits", "", 0},
	{"height", "", 0},
	{"href", "", 0},
	{"hrefLang", "hreflang", 0},
	{"horizAdvX", "horiz-adv-x", number},
	{"horizOriginX", "horiz-origin-x", number},
	{"horizOriginY", "horiz-origin-y", number},
	{"id", "", 0},
	{"imageRendering", "image-rendering", 0},
	{"in", "", 0},
	{"in2", "", 0},
	{"k", "", number},
	{"k1", "", number},
	{"k2", "", number},
	{"k3", "", number},
	{"k4", "", number},
	{"kernelMatrix", "", commaOrSpaceSeparated},
	{"kernelUnitLength", "", 0},
	{"keyPoints", "", 0},
	{"keySplines", "", 0},
	{"keyTimes", "", 0},
	{"kerning", "", 0},
	{"lang", "", 0},
	{"lengthAdjust", "", 0},
	{"letterSpacing", "letter-spacing", 0},
	{"lightingColor", "lighting-color", 0},
	{"limitingConeAngle", "", number},
	{"markerEnd", "marker-end", 0},
	{"markerMid", "marker-mid", 0},
	{"markerStart", "marker-start", 0},
	{"markerHeight", "", 0},
	{"markerUnits", "", 0},
	{"markerWidth", "", 0},
	{"mask", "", 0},
	{"maskContentUnits", "", 0},
	{"maskUnits", "", 0},
	{"mathematical", "", 0},
	{"max", "", 0},
	{"media", "", 0},
	{"method", "", 0},
	{"min", "", 0},
	{"mode", "", 0},
	{"name", "", 0},
	{"numOctaves", "", 0},
	{"offset", "", 0},
	{"opacity", "", 0},
	{"operator", "", 0},
	{"order", "", 0},
	{"orient", "", 0},
	{"orientation", "", 0},
	{"origin", "", 0},
	{"overflow", "", 0},
	{"overlinePosition", "overline-position", number},
	{"overlineThickness", "overline-thickness", number},
	{"paintOrder", "paint-order", 0},
	{"panose1", "panose-1", 0},
	{"path", "", 0},
	{"pathLength", "", number},
	{"patternContentUnits", "", 0},
	{"patternTransform", "", 0},
	{"patternUnits", "", 0},
	{"ping", "", spaceSeparated},
	{"pointerEvents", "pointer-events", 0},
	{"points", "", 0},
	{"pointsAtX", "", number},
	{"pointsAtY", "", number},
	{"pointsAtZ", "", number},
	{"preserveAlpha", "", 0},
	{"preserveAspectRatio", "", 0},
	{"primitiveUnits", "", 0},
	{"r", "", 0},
	{"radius", "", 0},
	{"refX", "", 0},
	{"refY", "", 0},
	{"rel", "", commaOrSpaceSeparated},
	{"renderingIntent", "rendering-intent", 0},
	{"repeatCount", "", 0},
	{"repeatDur", "", 0},
	{"requiredExtensions", "", commaOrSpaceSeparated},
	{"requiredFeatures", "", commaOrSpaceSeparated},
	{"restart", "", 0},
	{"result", "", 0},
	{"rotate", "", 0},
	{"rx", "", 0},
	{"ry", "", 0},
	{"scale", "", 0},
	{"seed", "", 0},
	{"shapeRendering", "shape-rendering", 0},
	{"side", "", 0},
	{"slope", "", 0},
	{"spacing", "", 0},
	{"specularConstant", "", number},
	{"specularExponent", "", number},
	{"spreadMethod", "", 0},
	{"startOffset", "", 0},
	{"stdDeviation", "", 0},
	{"stemh", "", 0},
	{"stemv", "", 0},
	{"stitchTiles", "", 0},
	{"stopColor", "stop-color", 0},
	{"stopOpacity", "stop-opacity", 0},
	{"strikethroughPosition", "strikethrough-position", number},
	{"strikethroughThickness", "strikethrough-thickness", number},
	{"string", "", 0},
	{"stroke", "", 0},
	{"strokeDashArray", "stroke-dasharray", commaOrSpaceSeparated},
	{"strokeDashOffset", "stroke-dashoffset", 0},
	{"strokeLineCap", "stroke-linecap", 0},
	{"strokeLineJoin", "stroke-linejoin", 0},
	{"strokeMiterLimit", "stroke-miterlimit", number},
	{"strokeOpacity", "stroke-opacity", number},
	{"strokeWidth", "stroke-width", 0},
	{"style", "", 0},
	{"surfaceScale", "", number},
	{"systemLanguage", "", commaOrSpaceSeparated},
	{"tabIndex", "tabindex", 0},
	{"tableValues", "", 0},
	{"target", "", 0},
	{"targetX", "", number},
	{"targetY", "", number},
	{"textAnchor", "text-anchor", 0},
	{"textDecoration", "text-decoration", 0},
	{"textRendering", "text-rendering", 0},
	{"textLength", "", 0},
	{"transform", "", 0},
	{"transformOrigin", "transform-origin", 0},
	{"type", "", 0},
	{"u1", "", 0},
	{"u2", "", 0},
	{"underlinePosition", "underline-position", number},
	{"underlineThickness", "underline-thickness", number},
	{"unicode", "", 0},
	{"unicodeBidi", "unicode-bidi", 0},
	{"unicodeRange", "unicode-range", 0},
	{"unitsPerEm", "units-per-em", number},
	{"values", "", 0},
	{"vectorEffect", "vector-effect", 0},
	{"version", "", 0},
	{"vertAdvY", "vert-adv-y", number},
	{"vertOriginX", "vert-origin-x", number},
	{"vertOriginY", "vert-origin-y", number},
	{"viewBox", "", 0},
	{"viewTarget", "", 0},
	{"visibility", "", 0},
	{"width", "", 0},
	{"widths", "", 0},
	{"wordSpacing", "word-spacing", 0},
	{"writingMode", "writing-mode", 0},
	{"x", "", 0},
	{"x1", "", 0},
	{"x2", "", 0},
	{"xChannelSelector", "", 0},
	{"xHeight", "x-height", number},
	{"y", "", 0},
	{"y1", "", 0},
	{"y2", "", 0},
	{"yChannelSelector", "", 0},
	{"z", "", 0},
	{"zoomAndPan", "", 0},
}
